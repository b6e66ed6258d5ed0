// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package lz77 performs the sliding-window longest-match search DEFLATE
// (RFC 1951 section 4) runs before Huffman coding: a greedy, "lazy-off"
// search seeded by 3-byte hash keys, producing a literal/match token
// stream and, optionally, the symbol frequency tables a dynamic Huffman
// block needs.
package lz77

// MinLength and MaxLength bound a DEFLATE match; Window is the maximum
// backward distance a match may reference.
const (
	MinLength = 3
	MaxLength = 258
	Window    = 32768
)

// Token is one element of the flattened LZ77 output: either a literal byte
// or a length/distance match. IsMatch selects which fields are valid.
type Token struct {
	IsMatch  bool
	Lit      byte
	Length   uint16
	Distance uint16
}

// Config controls the matcher's search strategy and bookkeeping.
type Config struct {
	// MatchStep is the stride used when extending a candidate match from
	// its first byte: extension happens MatchStep bytes at a time
	// until a stride fails to compare equal, then falls back to a
	// byte-at-a-time scan over the remainder. This only affects how fast
	// the search runs, never its result. Zero means 1 (no striding).
	MatchStep int

	// CollectFrequencies makes Match additionally populate the two
	// frequency arrays, for callers building a dynamic Huffman block.
	// Stored and Fixed blocks never need them, so leaving this false
	// skips the bookkeeping entirely.
	CollectFrequencies bool
}

// litlenEndOfBlock is the synthetic literal/length symbol that marks the
// end of a DEFLATE block's token stream (RFC 1951 section 3.2.5).
const litlenEndOfBlock = 256

// Match runs the greedy LZ77 search over input and returns its token
// stream. When cfg.CollectFrequencies is set, litlenFreq and distFreq hold
// the symbol frequencies needed to build a dynamic Huffman block: index
// 256 of litlenFreq is incremented exactly once, for the end-of-block
// symbol appended after the last token.
func Match(input []byte, cfg Config) (tokens []Token, litlenFreq [286]int32, distFreq [30]int32) {
	step := cfg.MatchStep
	if step <= 0 {
		step = 1
	}

	table := make(map[uint32][]int32)
	n := len(input)
	tokens = make([]Token, 0, n/2+1)

	for p := 0; p < n; {
		if n-p < MinLength {
			tokens = append(tokens, Token{Lit: input[p]})
			if cfg.CollectFrequencies {
				litlenFreq[input[p]]++
			}
			p++
			continue
		}

		key := hashKey(input[p : p+3])
		candidates := table[key]
		candidates = prune(candidates, p)

		length, distance, ok := 0, 0, false
		if len(candidates) > 0 {
			length, distance, ok = longestMatch(input, p, candidates, step)
		}

		table[key] = append(candidates, int32(p))

		if ok {
			tokens = append(tokens, Token{
				IsMatch:  true,
				Length:   uint16(length),
				Distance: uint16(distance),
			})
			if cfg.CollectFrequencies {
				lenCode, _, _ := LengthToCode(length)
				distCode, _, _ := DistanceToCode(distance)
				litlenFreq[lenCode]++
				distFreq[distCode]++
			}
			for i := 1; i < length; i++ {
				q := p + i
				if n-q < MinLength {
					break
				}
				k := hashKey(input[q : q+3])
				table[k] = append(prune(table[k], p), int32(q))
			}
			p += length
			continue
		}

		tokens = append(tokens, Token{Lit: input[p]})
		if cfg.CollectFrequencies {
			litlenFreq[input[p]]++
		}
		p++
	}

	if cfg.CollectFrequencies {
		litlenFreq[litlenEndOfBlock]++
	}
	return tokens, litlenFreq, distFreq
}

func hashKey(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// prune drops every stored position q more than Window bytes behind p.
// Positions are appended in chronological order, so the oldest entries
// are always at the front and popping from the head is sufficient.
func prune(positions []int32, p int) []int32 {
	i := 0
	for i < len(positions) && p-int(positions[i]) > Window {
		i++
	}
	if i == 0 {
		return positions
	}
	return positions[i:]
}

// longestMatch searches candidates (closest-first is not assumed; every
// candidate is checked) for the longest run matching input starting at p,
// breaking ties by preferring the smallest distance.
func longestMatch(input []byte, p int, candidates []int32, step int) (length, distance int, ok bool) {
	limit := len(input) - p
	if limit > MaxLength {
		limit = MaxLength
	}

	bestLen := 0
	bestDist := 0
	for _, q32 := range candidates {
		q := int(q32)
		l := matchLength(input, q, p, limit, step)
		if l < MinLength {
			continue
		}
		dist := p - q
		if l > bestLen || (l == bestLen && dist < bestDist) {
			bestLen = l
			bestDist = dist
		}
	}
	if bestLen < MinLength {
		return 0, 0, false
	}
	return bestLen, bestDist, true
}

// matchLength compares input[q:] against input[p:] up to limit bytes,
// striding by step for cache-friendlier scanning and falling back to a
// byte-at-a-time scan once a stride fails to compare equal in full.
func matchLength(input []byte, q, p, limit, step int) int {
	i := 0
	for i+step <= limit {
		if !bytesEqual(input[q+i:q+i+step], input[p+i:p+i+step]) {
			break
		}
		i += step
	}
	for i < limit && input[q+i] == input[p+i] {
		i++
	}
	return i
}

func bytesEqual(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
