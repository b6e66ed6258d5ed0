// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package prioq implements the indexed binary min-heap the Huffman code
// builder (package huffman) uses to repeatedly pick the two lowest-weight
// pending nodes.
//
// Following the "arena + indices instead of linked heap nodes" design note,
// nodes live in one flat backing slice; there is no separately allocated
// node type with pointer fields.
package prioq

// node is one (index, weight) pair. index identifies the symbol or internal
// tree node the weight belongs to; the heap itself only ever compares
// weight.
type node struct {
	index  int32
	weight int32
}

// Heap is a binary min-heap ordered by weight alone. Pop order among
// equal-weight pairs is not insertion order: after a Pop, sifting the last
// pair down can leave it ahead of equal-weight pairs pushed before it.
type Heap struct {
	nodes []node
}

// Len returns the number of pairs currently in the heap.
func (h *Heap) Len() int {
	return len(h.nodes)
}

// Push inserts (index, weight) and restores the heap invariant.
func (h *Heap) Push(index int32, weight int32) {
	h.nodes = append(h.nodes, node{index, weight})
	h.siftUp(len(h.nodes) - 1)
}

// Pop removes and returns the pair with the smallest weight. ok is false if
// the heap is empty.
func (h *Heap) Pop() (index int32, weight int32, ok bool) {
	n := len(h.nodes)
	if n == 0 {
		return 0, 0, false
	}
	top := h.nodes[0]
	last := h.nodes[n-1]
	h.nodes = h.nodes[:n-1]
	if n > 1 {
		h.nodes[0] = last
		h.siftDown(0)
	}
	return top.index, top.weight, true
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[parent].weight <= h.nodes[i].weight {
			break
		}
		h.nodes[parent], h.nodes[i] = h.nodes[i], h.nodes[parent]
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.nodes)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.nodes[left].weight < h.nodes[smallest].weight {
			smallest = left
		}
		if right < n && h.nodes[right].weight < h.nodes[smallest].weight {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.nodes[i], h.nodes[smallest] = h.nodes[smallest], h.nodes[i]
		i = smallest
	}
}
