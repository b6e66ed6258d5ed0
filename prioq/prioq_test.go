// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package prioq

import "testing"

func TestPushPopOrdersByWeight(t *testing.T) {
	var h Heap
	h.Push(0, 5)
	h.Push(1, 3)
	h.Push(2, 9)
	h.Push(3, 1)
	h.Push(4, 3)

	var weights []int32
	for h.Len() > 0 {
		_, w, ok := h.Pop()
		if !ok {
			t.Fatal("Pop returned ok=false while Len() > 0")
		}
		weights = append(weights, w)
	}
	want := []int32{1, 3, 3, 5, 9}
	if len(weights) != len(want) {
		t.Fatalf("got %d pops, want %d", len(weights), len(want))
	}
	for i := range want {
		if weights[i] != want[i] {
			t.Errorf("pop[%d] = %d, want %d", i, weights[i], want[i])
		}
	}
}

func TestPopEmpty(t *testing.T) {
	var h Heap
	if _, _, ok := h.Pop(); ok {
		t.Error("Pop on empty heap returned ok=true")
	}
}

func TestLenTracksPushesAndPops(t *testing.T) {
	var h Heap
	if h.Len() != 0 {
		t.Fatalf("initial Len() = %d, want 0", h.Len())
	}
	h.Push(0, 10)
	h.Push(1, 20)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	h.Pop()
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
}

func TestIndexPreservedThroughHeap(t *testing.T) {
	var h Heap
	h.Push(42, 7)
	h.Push(99, 2)
	idx, weight, ok := h.Pop()
	if !ok || idx != 99 || weight != 2 {
		t.Fatalf("Pop() = (%d, %d, %v), want (99, 2, true)", idx, weight, ok)
	}
	idx, weight, ok = h.Pop()
	if !ok || idx != 42 || weight != 7 {
		t.Fatalf("Pop() = (%d, %d, %v), want (42, 7, true)", idx, weight, ok)
	}
}
