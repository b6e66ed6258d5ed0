// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package deflate implements a from-scratch RFC 1951 DEFLATE encoder and
// its RFC 1950 zlib wrapper, built on packages lz77, huffman, bitio, and
// checksum. It never decodes: the standard library's compress/flate is
// used only by this package's own tests, as an independent oracle.
package deflate

import (
	"fmt"

	"github.com/imaya/pngenc/bitio"
	"github.com/imaya/pngenc/checksum"
	"github.com/imaya/pngenc/lz77"
)

// BlockType selects which of RFC 1951's three block encodings Compress
// produces. The zero value is Fixed, since a caller that does not care
// about block type wants a correct, zero-configuration result rather
// than the (slightly) larger Stored encoding that BTYPE 00 implies.
type BlockType uint8

const (
	Fixed BlockType = iota
	Stored
	Dynamic
)

// btypeBits is the two-bit BTYPE field RFC 1951 section 3.2.3 assigns to
// each block type; it intentionally does not track BlockType's own
// iota ordering.
var btypeBits = map[BlockType]uint32{
	Stored:  0,
	Fixed:   1,
	Dynamic: 2,
}

// storedBlockLimit is the largest payload a single stored block's 16-bit
// LEN field can carry.
const storedBlockLimit = 65535

// defaultMatchStep is the LZ77 search stride used by Compress and
// ZlibCompress; see lz77.Config.MatchStep.
const defaultMatchStep = 8

// Config controls how Compress and ZlibCompress encode their input.
type Config struct {
	// BlockType selects Stored, Fixed, or Dynamic encoding.
	BlockType BlockType

	// Final marks the emitted block(s) as the last in the DEFLATE
	// stream (BFINAL=1 on the last block written). Its zero value is
	// false, which Compress uses as given: a zero Config produces a
	// block with BFINAL=0, not a complete stream. False is for
	// composing multiple Compress calls into one larger DEFLATE stream
	// by hand.
	Final bool
}

// Compress returns the raw RFC 1951 DEFLATE encoding of input, with no
// zlib framing.
func Compress(input []byte, cfg Config) ([]byte, error) {
	switch cfg.BlockType {
	case Stored:
		return compressStored(input, cfg.Final)
	case Dynamic:
		return compressDynamic(input, cfg.Final)
	default:
		return compressFixed(input, cfg.Final)
	}
}

// ZlibCompress wraps Compress's output in an RFC 1950 zlib container:
// a two-byte CMF/FLG header followed by the DEFLATE stream and a
// big-endian Adler-32 trailer over the uncompressed input.
func ZlibCompress(input []byte, cfg Config) ([]byte, error) {
	body, err := Compress(input, cfg)
	if err != nil {
		return nil, err
	}

	const cm = 8    // DEFLATE compression method
	const cinfo = 7 // log2(32768) - 8, a 32 KiB window
	cmf := byte(cinfo<<4 | cm)

	var flevel byte
	switch cfg.BlockType {
	case Stored:
		flevel = 0
	case Dynamic:
		flevel = 2
	default:
		flevel = 1
	}
	flg := flevel << 6 // FDICT=0
	flg = setFCheck(cmf, flg)

	out := make([]byte, 0, len(body)+6)
	out = append(out, cmf, flg)
	out = append(out, body...)

	sum := checksum.Adler32(input)
	out = append(out, byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum))
	return out, nil
}

// setFCheck returns flg with its low 5 bits (FCHECK) adjusted so that
// (cmf*256 + flg) is a multiple of 31, as RFC 1950 section 2.2 requires.
func setFCheck(cmf, flg byte) byte {
	flg &^= 0x1f
	rem := (int(cmf)*256 + int(flg)) % 31
	if rem != 0 {
		flg += byte(31 - rem)
	}
	return flg
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// compressStored emits one or more BTYPE=00 blocks, splitting input into
// chunks no larger than storedBlockLimit (the largest value its 16-bit
// LEN field can hold). An empty input still produces exactly one
// (empty) stored block, so the output is always a well-formed DEFLATE
// stream.
func compressStored(input []byte, final bool) ([]byte, error) {
	w := bitio.NewWriter(len(input) + 16)

	chunks := splitStored(input)
	for i, chunk := range chunks {
		isLast := i == len(chunks)-1
		writeBlockHeader(w, Stored, isLast && final)
		w.Align()
		writeStoredBody(w, chunk)
	}
	return w.Finish(), nil
}

func splitStored(input []byte) [][]byte {
	if len(input) == 0 {
		return [][]byte{nil}
	}
	var chunks [][]byte
	for len(input) > 0 {
		n := len(input)
		if n > storedBlockLimit {
			n = storedBlockLimit
		}
		chunks = append(chunks, input[:n])
		input = input[n:]
	}
	return chunks
}

func writeBlockHeader(w *bitio.Writer, bt BlockType, final bool) {
	w.WriteBits(boolBit(final), 1, true)
	w.WriteBits(btypeBits[bt], 2, true)
}

func writeStoredBody(w *bitio.Writer, chunk []byte) {
	length := uint16(len(chunk))
	nlen := ^length
	w.WriteBytes([]byte{
		byte(length), byte(length >> 8),
		byte(nlen), byte(nlen >> 8),
	})
	w.WriteBytes(chunk)
}

// compressFixed emits a single BTYPE=01 block using RFC 1951's fixed
// Huffman tables.
func compressFixed(input []byte, final bool) ([]byte, error) {
	tokens, _, _ := lz77.Match(input, lz77.Config{MatchStep: defaultMatchStep})

	w := bitio.NewWriter(len(input)/2 + 16)
	writeBlockHeader(w, Fixed, final)

	if err := emitTokens(w, tokens, fixedLitLenLengths[:], fixedLitLenCodes, fixedDistLengths[:], fixedDistCodes); err != nil {
		return nil, err
	}
	emitSymbol(w, 256, fixedLitLenLengths[:], fixedLitLenCodes)
	return w.Finish(), nil
}

// emitSymbol writes one litlen symbol's canonical code.
func emitSymbol(w *bitio.Writer, symbol int, lengths []uint8, codes []uint16) {
	w.WriteBits(uint32(codes[symbol]), uint(lengths[symbol]), true)
}

// emitTokens writes an LZ77 token stream's literal and match codes using
// the given literal/length and distance tables. Each match token's four
// fields (length code, length extra bits, distance code, distance extra
// bits) are resolved up front and written in that fixed order, so no
// field is read after a previous field from the same token has already
// advanced the bit cursor.
func emitTokens(w *bitio.Writer, tokens []lz77.Token, litlenLengths []uint8, litlenCodes []uint16, distLengths []uint8, distCodes []uint16) error {
	for _, tok := range tokens {
		if !tok.IsMatch {
			emitSymbol(w, int(tok.Lit), litlenLengths, litlenCodes)
			continue
		}

		lenCode, lenExtraBits, lenExtraValue := lz77.LengthToCode(int(tok.Length))
		if lenCode < 257 || lenCode > 285 {
			return fmt.Errorf("deflate: length %d: %w", tok.Length, ErrInvalidLengthCode)
		}
		distCode, distExtraBits, distExtraValue := lz77.DistanceToCode(int(tok.Distance))
		if distCode < 0 || distCode > 29 {
			return fmt.Errorf("deflate: distance %d: %w", tok.Distance, ErrInvalidDistanceCode)
		}

		emitSymbol(w, lenCode, litlenLengths, litlenCodes)
		if lenExtraBits > 0 {
			w.WriteBits(uint32(lenExtraValue), uint(lenExtraBits), true)
		}
		emitSymbol(w, distCode, distLengths, distCodes)
		if distExtraBits > 0 {
			w.WriteBits(uint32(distExtraValue), uint(distExtraBits), true)
		}
	}
	return nil
}
