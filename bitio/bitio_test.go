// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package bitio

import (
	"bytes"
	"testing"
)

func TestEmptyStoredBlockHeader(t *testing.T) {
	// BFINAL=1, BTYPE=00 (Stored), padded to a byte boundary. This is the
	// first DEFLATE byte (the third byte, after CMF and FLG, of the zlib
	// stream) for deflate("", Stored) in the spec's scenario 1.
	w := NewWriter(0)
	w.WriteBits(1, 1, true) // BFINAL
	w.WriteBits(0, 2, true) // BTYPE
	w.Align()
	got := w.Finish()
	want := []byte{0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestWriteBitsReverseFalseReversesValue(t *testing.T) {
	// reverse=false must read the n bits MSB-first: writing value 0b110
	// (n=3) with reverse=false is the same as writing the bit-reversed
	// value 0b011 with reverse=true.
	a := NewWriter(0)
	a.WriteBits(0b110, 3, false)
	got := a.Finish()

	b := NewWriter(0)
	b.WriteBits(0b011, 3, true)
	want := b.Finish()

	if !bytes.Equal(got, want) {
		t.Errorf("reverse=false mismatch: got %x, want %x", got, want)
	}
}

func TestWriteBitsSpansMultipleBytes(t *testing.T) {
	w := NewWriter(0)
	// Write 12 bits: 0xABC taken LSB-first.
	w.WriteBits(0xABC, 12, true)
	got := w.Finish()
	if len(got) != 2 {
		t.Fatalf("expected 2 bytes, got %d: %x", len(got), got)
	}
	// Reconstruct the 12-bit value from the packed bytes, LSB-first.
	reconstructed := uint32(got[0]) | uint32(got[1])<<8
	reconstructed &= 0xFFF
	if reconstructed != 0xABC {
		t.Errorf("round trip mismatch: got %#x, want %#x", reconstructed, 0xABC)
	}
}

func TestAlignNoOpWhenAlreadyAligned(t *testing.T) {
	w := NewWriter(0)
	w.WriteBits(0xFF, 8, true)
	w.Align()
	w.WriteBits(0x00, 8, true)
	got := w.Finish()
	want := []byte{0xFF, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestFinishZeroPadsPartialByte(t *testing.T) {
	w := NewWriter(0)
	w.WriteBits(0b101, 3, true)
	got := w.Finish()
	want := []byte{0b0000_0101}
	if !bytes.Equal(got, want) {
		t.Errorf("got %08b, want %08b", got[0], want[0])
	}
}

func TestWriteBytesRequiresNoPendingBits(t *testing.T) {
	w := NewWriter(0)
	w.WriteBytes([]byte{1, 2, 3})
	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", w.Len())
	}
	got := w.Finish()
	want := []byte{1, 2, 3}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReverseBits(t *testing.T) {
	cases := []struct {
		v, n, want uint32
	}{
		{0b001, 3, 0b100},
		{0b0, 4, 0b0},
		{0b1, 1, 0b1},
		{0b1010, 4, 0b0101},
		{0xFF, 8, 0xFF},
	}
	for _, c := range cases {
		if got := reverseBits(c.v, uint(c.n)); got != c.want {
			t.Errorf("reverseBits(%b, %d) = %b, want %b", c.v, c.n, got, c.want)
		}
	}
}
