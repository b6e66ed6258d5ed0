// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package deflate

import (
	"bytes"
	"compress/flate"
	"io"
	"testing"
)

func inflate(t *testing.T, compressed []byte) []byte {
	t.Helper()
	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	return out
}

func TestZlibCompressEmptyStored(t *testing.T) {
	got, err := ZlibCompress(nil, Config{BlockType: Stored, Final: true})
	if err != nil {
		t.Fatalf("ZlibCompress: %v", err)
	}
	want := []byte{0x78, 0x01, 0x01, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestZlibCompressSingleByteFixed(t *testing.T) {
	got, err := ZlibCompress([]byte("a"), Config{BlockType: Fixed, Final: true})
	if err != nil {
		t.Fatalf("ZlibCompress: %v", err)
	}
	if len(got) != 9 {
		t.Fatalf("got %d bytes, want 9: % x", len(got), got)
	}
	trailer := got[len(got)-4:]
	wantTrailer := []byte{0x00, 0x62, 0x00, 0x62}
	if !bytes.Equal(trailer, wantTrailer) {
		t.Errorf("trailer = % x, want % x", trailer, wantTrailer)
	}
	body := got[2 : len(got)-4]
	if string(inflate(t, body)) != "a" {
		t.Errorf("inflated body = %q, want %q", inflate(t, body), "a")
	}
}

func TestDynamicBlockBeatsStoredOnRepetitiveInput(t *testing.T) {
	input := bytes.Repeat([]byte("a"), 2304)
	body, err := Compress(input, Config{BlockType: Dynamic, Final: true})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(body) >= len(input)+11 {
		t.Errorf("dynamic output %d bytes, want < %d", len(body), len(input)+11)
	}
	if got := inflate(t, body); !bytes.Equal(got, input) {
		t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(input))
	}
}

func TestRoundTripAllBlockTypes(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("hello, world"),
		bytes.Repeat([]byte("xy"), 5000),
		[]byte("the quick brown fox jumps over the lazy dog"),
	}
	for _, bt := range []BlockType{Stored, Fixed, Dynamic} {
		for _, input := range inputs {
			body, err := Compress(input, Config{BlockType: bt, Final: true})
			if err != nil {
				t.Fatalf("Compress(blockType=%d): %v", bt, err)
			}
			got := inflate(t, body)
			if !bytes.Equal(got, input) {
				t.Errorf("blockType=%d: round trip mismatch for input of length %d", bt, len(input))
			}
		}
	}
}

func TestZlibHeaderChecksum(t *testing.T) {
	for _, bt := range []BlockType{Stored, Fixed, Dynamic} {
		out, err := ZlibCompress([]byte("zlib header check"), Config{BlockType: bt, Final: true})
		if err != nil {
			t.Fatalf("ZlibCompress: %v", err)
		}
		cmf, flg := int(out[0]), int(out[1])
		if (cmf*256+flg)%31 != 0 {
			t.Errorf("blockType=%d: (CMF*256+FLG) mod 31 = %d, want 0", bt, (cmf*256+flg)%31)
		}
	}
}

func TestStoredBlockSplitsAtSizeLimit(t *testing.T) {
	input := make([]byte, storedBlockLimit*2+10)
	for i := range input {
		input[i] = byte(i)
	}
	body, err := Compress(input, Config{BlockType: Stored, Final: true})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got := inflate(t, body)
	if !bytes.Equal(got, input) {
		t.Error("round trip mismatch across stored block split")
	}
}

func FuzzRoundTripDynamic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add(bytes.Repeat([]byte("ab"), 100))
	f.Fuzz(func(t *testing.T, input []byte) {
		body, err := Compress(input, Config{BlockType: Dynamic, Final: true})
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		got := inflate(t, body)
		if !bytes.Equal(got, input) {
			t.Fatalf("round trip mismatch for input %x", input)
		}
	})
}
