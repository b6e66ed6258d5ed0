// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package huffman builds length-limited canonical Huffman codes from symbol
// frequencies, as RFC 1951 section 3.2.2 requires for DEFLATE's dynamic
// blocks (and, reused once at package init, for its fixed blocks too; see
// deflate.fixedLitLenLengths).
//
// BuildLengths constructs the minimum-weight tree (via package prioq's
// arena-backed heap, per the "arena + indices instead of linked heap nodes"
// design note) and returns one bit length per symbol. CodesFromLengths then
// assigns canonical codes purely from those lengths, independent of how they
// were derived.
package huffman

import (
	"errors"

	"github.com/imaya/pngenc/prioq"
)

// ErrCorruptTree is returned when a length assignment passed to
// CodesFromLengths over- or under-commits the canonical code space: no
// prefix-free code exists for it. Seeing this from BuildLengths' own output
// indicates an implementation bug, since BuildLengths always derives
// lengths from an actual binary tree.
var ErrCorruptTree = errors.New("huffman: corrupt or incomplete code length table")

// maxProbTable maps a length limit to the "maxProb" constant used to expand
// frequencies before tree construction, reproducing PuTTY's empirically
// chosen values for DEFLATE's two length-limited alphabets: 15 bits for the
// literal/length and distance alphabets, 7 bits for the code-length
// alphabet.
var maxProbTable = map[int]int64{
	15: 2584,
	7:  55,
}

// BuildLengths returns one code length per symbol (0 for symbols with zero
// frequency and not otherwise needed), such that a canonical Huffman code
// built from them never exceeds maxLen bits per symbol. maxLen must be 15
// (the main literal/length and distance alphabets) or 7 (the code-length
// alphabet); any other value disables length limiting entirely (used only
// by tests exercising the unconstrained tree builder).
//
// Per DEFLATE's requirement that a tree be constructible even when fewer
// than two symbols have nonzero frequency, zero-frequency symbols are
// promoted to frequency 1 (in ascending symbol order) until at least two
// positive frequencies exist.
func BuildLengths(freqs []int32, maxLen int) ([]uint8, error) {
	n := len(freqs)
	work := make([]int32, n)
	copy(work, freqs)

	positive := 0
	for _, f := range work {
		if f > 0 {
			positive++
		}
	}
	for i := 0; positive < 2 && i < n; i++ {
		if work[i] == 0 {
			work[i] = 1
			positive++
		}
	}

	lengths := make([]uint8, n)
	if positive == 0 {
		return lengths, nil
	}
	if positive == 1 {
		for i, f := range work {
			if f > 0 {
				lengths[i] = 1
			}
		}
		return lengths, nil
	}

	if maxProb, ok := maxProbTable[maxLen]; ok {
		limitFrequencies(work, maxProb)
	}

	root, parent := buildTree(work)

	for i, f := range work {
		if f <= 0 {
			continue
		}
		depth := uint8(0)
		node := int32(i)
		for node != root {
			node = parent[node]
			depth++
		}
		lengths[i] = depth
	}

	if _, ok := maxProbTable[maxLen]; ok {
		for _, l := range lengths {
			if int(l) > maxLen {
				return nil, ErrCorruptTree
			}
		}
	}
	return lengths, nil
}

// limitFrequencies adds a uniform adjustment to every positive frequency in
// work so that the resulting minimum-weight tree cannot exceed the bit
// length implied by maxProb. totalFreq is explicitly seeded at 0 before
// summation (an uninitialized accumulator was a bug in one source variant
// this package's spec is grounded on).
func limitFrequencies(work []int32, maxProb int64) {
	var totalFreq int64 = 0
	var smallest int64 = -1
	var nActive int64 = 0
	for _, f := range work {
		if f > 0 {
			totalFreq += int64(f)
			nActive++
			if smallest < 0 || int64(f) < smallest {
				smallest = int64(f)
			}
		}
	}
	denom := maxProb - nActive
	if denom <= 0 {
		return
	}
	numer := totalFreq - smallest*maxProb
	if numer <= 0 {
		return
	}
	adjust := (numer + denom - 1) / denom // ceil
	if adjust <= 0 {
		return
	}
	for i, f := range work {
		if f > 0 {
			work[i] = f + int32(adjust)
		}
	}
}

// buildTree repeatedly combines the two lowest-weight pending nodes (via
// prioq.Heap) until one root remains, recording each combined node's
// parent. Internal nodes are indexed starting at len(work); the returned
// parent slice is long enough to hold every internal node created.
func buildTree(work []int32) (root int32, parent []int32) {
	n := int32(len(work))
	parent = make([]int32, 2*n)
	for i := range parent {
		parent[i] = -1
	}

	var h prioq.Heap
	for i, f := range work {
		if f > 0 {
			h.Push(int32(i), f)
		}
	}

	next := n
	for h.Len() > 1 {
		ia, wa, _ := h.Pop()
		ib, wb, _ := h.Pop()
		if int(next) >= len(parent) {
			parent = append(parent, -1)
		}
		parent[ia] = next
		parent[ib] = next
		h.Push(next, wa+wb)
		root = next
		next++
	}
	return root, parent
}

// CodesFromLengths assigns canonical Huffman codes from a per-symbol length
// table per RFC 1951 section 3.2.2, then bit-reverses each code to its
// length so it can be packed LSB-first alongside every other DEFLATE field
// (see package bitio). The canonical-completeness invariant is checked
// against the longest length actually present, so this works unmodified
// for both the 15-bit main alphabets and the 7-bit code-length alphabet.
func CodesFromLengths(lengths []uint8) ([]uint16, error) {
	var counts [16]int
	nonZero := 0
	maxLen := 0
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if l > 15 {
			return nil, ErrCorruptTree
		}
		counts[l]++
		nonZero++
		if int(l) > maxLen {
			maxLen = int(l)
		}
	}

	codes := make([]uint16, len(lengths))
	if nonZero == 0 {
		return codes, nil
	}

	var nextCode [16]uint16
	code := uint16(0)
	for bits := 1; bits <= 15; bits++ {
		code = (code + uint16(counts[bits-1])) << 1
		nextCode[bits] = code
	}

	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		codes[sym] = reverse16(c, uint(l))
	}

	if nonZero == 1 {
		// A single-symbol alphabet is degenerate but valid: RFC 1951 permits
		// a length-1 code with nothing to prefix against.
		return codes, nil
	}

	// Kraft-McMillan completeness check, scaled to the longest length
	// actually present in lengths: a canonical code must exactly tile
	// the code space at every length, leaving no unassigned leaf and no
	// overlap. This rejects any genuinely incomplete or overcommitted
	// table. DEFLATE's one standard incomplete alphabet (the fixed
	// distance code, RFC 1951 section 3.2.6) is not a special case here:
	// its caller pads the alphabet to 32 symbols of length 5 before
	// calling CodesFromLengths, which is itself complete (32*2^-5 = 1),
	// so this function never needs to knowingly accept an incomplete
	// input.
	var sum int64
	for _, l := range lengths {
		if l > 0 {
			sum += int64(1) << uint(maxLen-int(l))
		}
	}
	if sum != int64(1)<<uint(maxLen) {
		return nil, ErrCorruptTree
	}
	return codes, nil
}

func reverse16(v uint16, n uint) uint16 {
	var out uint16
	for i := uint(0); i < n; i++ {
		out = (out << 1) | (v & 1)
		v >>= 1
	}
	return out
}

