// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package lz77

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestMatchEmitsEndOfBlockFrequencyOnce(t *testing.T) {
	_, litlenFreq, _ := Match([]byte("abcabcabc"), Config{CollectFrequencies: true})
	if litlenFreq[litlenEndOfBlock] != 1 {
		t.Errorf("litlenFreq[256] = %d, want 1", litlenFreq[litlenEndOfBlock])
	}
}

func TestMatchRoundTripsAgainstInput(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("aaaaaaaaaaaaaaaaaaaa"),
		[]byte("the quick brown fox jumps over the lazy dog, the quick brown fox"),
		bytes.Repeat([]byte{0x00, 0x01, 0x02}, 200),
	}
	for _, input := range cases {
		tokens, _, _ := Match(input, Config{MatchStep: 8})
		reconstructed := reconstruct(tokens)
		if !bytes.Equal(reconstructed, input) {
			t.Errorf("round trip mismatch for input of length %d", len(input))
		}
	}
}

func TestMatchOnRandomDataRoundTrips(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	input := make([]byte, 5000)
	for i := range input {
		input[i] = byte(r.Intn(256))
	}
	tokens, _, _ := Match(input, Config{MatchStep: 8})
	reconstructed := reconstruct(tokens)
	if !bytes.Equal(reconstructed, input) {
		t.Error("round trip mismatch on random data")
	}
}

func TestMatchTokensRespectLengthAndDistanceBounds(t *testing.T) {
	input := bytes.Repeat([]byte("0123456789"), 5000)
	tokens, _, _ := Match(input, Config{MatchStep: 8})
	pos := 0
	for _, tok := range tokens {
		if !tok.IsMatch {
			pos++
			continue
		}
		if tok.Length < MinLength || tok.Length > MaxLength {
			t.Fatalf("match length %d out of range [%d,%d]", tok.Length, MinLength, MaxLength)
		}
		if tok.Distance < 1 || int(tok.Distance) > Window {
			t.Fatalf("match distance %d out of range [1,%d]", tok.Distance, Window)
		}
		if int(tok.Distance) > pos {
			t.Fatalf("match distance %d exceeds current position %d", tok.Distance, pos)
		}
		start := pos - int(tok.Distance)
		referenced := input[start : start+int(tok.Length)]
		actual := input[pos : pos+int(tok.Length)]
		if !bytes.Equal(referenced, actual) {
			t.Fatalf("match at pos %d does not reproduce source bytes", pos)
		}
		pos += int(tok.Length)
	}
}

func TestMatchStepDoesNotAffectTokenCorrectness(t *testing.T) {
	input := bytes.Repeat([]byte("abcdefgh"), 300)
	for _, step := range []int{0, 1, 4, 8, 16} {
		tokens, _, _ := Match(input, Config{MatchStep: step})
		reconstructed := reconstruct(tokens)
		if !bytes.Equal(reconstructed, input) {
			t.Errorf("MatchStep=%d: round trip mismatch", step)
		}
	}
}

func TestLengthToCodeAndDistanceToCodeRoundTrip(t *testing.T) {
	for length := MinLength; length <= MaxLength; length++ {
		code, extraBits, extraValue := LengthToCode(length)
		if code < 257 || code > 285 {
			t.Fatalf("length %d: code %d out of range", length, code)
		}
		got := lengthBase[code-257] + extraValue
		if got != length {
			t.Errorf("length %d: reconstructed %d (code=%d extraBits=%d)", length, got, code, extraBits)
		}
	}
	for _, distance := range []int{1, 2, 4, 100, 1000, 32768} {
		code, _, extraValue := DistanceToCode(distance)
		got := distanceBase[code] + extraValue
		if got != distance {
			t.Errorf("distance %d: reconstructed %d (code=%d)", distance, got, code)
		}
	}
}

func reconstruct(tokens []Token) []byte {
	var out []byte
	for _, tok := range tokens {
		if tok.IsMatch {
			start := len(out) - int(tok.Distance)
			for i := 0; i < int(tok.Length); i++ {
				out = append(out, out[start+i])
			}
			continue
		}
		out = append(out, tok.Lit)
	}
	return out
}
