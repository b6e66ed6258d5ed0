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
	"fmt"

	"github.com/imaya/pngenc/bitio"
	"github.com/imaya/pngenc/huffman"
	"github.com/imaya/pngenc/lz77"
)

// clSymbol is one entry of the code-length (tree-transmit) symbol stream:
// a symbol in 0..18, plus any extra bits symbols 16-18 carry.
type clSymbol struct {
	symbol     uint8
	extraBits  uint8
	extraValue uint16
}

// compressDynamic emits a single BTYPE=10 block: literal/length and
// distance Huffman tables built from this input's own symbol
// frequencies, transmitted via the 19-symbol code-length alphabet, then
// the LZ77 token stream coded against those tables.
func compressDynamic(input []byte, final bool) ([]byte, error) {
	tokens, litlenFreq, distFreq := lz77.Match(input, lz77.Config{
		MatchStep:          defaultMatchStep,
		CollectFrequencies: true,
	})

	litlenLengths, err := huffman.BuildLengths(litlenFreq[:], 15)
	if err != nil {
		return nil, fmt.Errorf("deflate: literal/length table: %w", err)
	}
	distLengths, err := huffman.BuildLengths(distFreq[:], 15)
	if err != nil {
		return nil, fmt.Errorf("deflate: distance table: %w", err)
	}
	litlenCodes, err := huffman.CodesFromLengths(litlenLengths)
	if err != nil {
		return nil, fmt.Errorf("deflate: literal/length table: %w", err)
	}
	distCodes, err := huffman.CodesFromLengths(distLengths)
	if err != nil {
		return nil, fmt.Errorf("deflate: distance table: %w", err)
	}

	hlit := highestNonZero(litlenLengths, 256) + 1 - 257
	if hlit < 0 {
		hlit = 0
	}
	hdist := highestNonZero(distLengths, 0)

	nLitLen := 257 + hlit
	nDist := 1 + hdist

	sequence := make([]uint8, 0, nLitLen+nDist)
	sequence = append(sequence, litlenLengths[:nLitLen]...)
	sequence = append(sequence, distLengths[:nDist]...)

	clSymbols, err := runLengthEncode(sequence)
	if err != nil {
		return nil, err
	}

	var clFreq [19]int32
	for _, s := range clSymbols {
		clFreq[s.symbol]++
	}
	clLengths, err := huffman.BuildLengths(clFreq[:], 7)
	if err != nil {
		return nil, fmt.Errorf("deflate: code-length table: %w", err)
	}
	clCodes, err := huffman.CodesFromLengths(clLengths)
	if err != nil {
		return nil, fmt.Errorf("deflate: code-length table: %w", err)
	}

	var permuted [19]uint8
	for i, sym := range codeLengthOrder {
		permuted[i] = clLengths[sym]
	}
	hclenLast := 3
	for i := 18; i >= 0; i-- {
		if permuted[i] != 0 {
			hclenLast = i
			break
		}
	}
	hclen := hclenLast + 1 - 4

	w := bitio.NewWriter(len(input)/2 + 32)
	writeBlockHeader(w, Dynamic, final)

	w.WriteBits(uint32(hlit), 5, true)
	w.WriteBits(uint32(hdist), 5, true)
	w.WriteBits(uint32(hclen), 4, true)
	for i := 0; i < hclen+4; i++ {
		w.WriteBits(uint32(permuted[i]), 3, true)
	}

	for _, s := range clSymbols {
		w.WriteBits(uint32(clCodes[s.symbol]), uint(clLengths[s.symbol]), true)
		if s.extraBits > 0 {
			w.WriteBits(uint32(s.extraValue), uint(s.extraBits), true)
		}
	}

	if err := emitTokens(w, tokens, litlenLengths, litlenCodes, distLengths, distCodes); err != nil {
		return nil, err
	}
	emitSymbol(w, 256, litlenLengths, litlenCodes)
	return w.Finish(), nil
}

// highestNonZero returns the highest index >= floor whose value is
// nonzero, or floor if none past it are.
func highestNonZero(lengths []uint8, floor int) int {
	highest := floor
	for i := len(lengths) - 1; i > floor; i-- {
		if lengths[i] != 0 {
			highest = i
			break
		}
	}
	return highest
}

// runLengthEncode turns a sequence of code lengths into the RFC 1951
// section 3.2.7 tree-transmit symbol stream: literal lengths 0-15 stand
// for themselves, 16 repeats the previous nonzero length 3-6 times, 17
// and 18 run-length encode runs of zero.
func runLengthEncode(lengths []uint8) ([]clSymbol, error) {
	var out []clSymbol
	i := 0
	for i < len(lengths) {
		runLen := 1
		for i+runLen < len(lengths) && lengths[i+runLen] == lengths[i] {
			runLen++
		}

		if lengths[i] == 0 {
			n := runLen
			for n > 0 {
				switch {
				case n < 3:
					out = append(out, clSymbol{symbol: 0})
					n--
				case n <= 10:
					out = append(out, clSymbol{symbol: 17, extraBits: 3, extraValue: uint16(n - 3)})
					n = 0
				default:
					chunk := n
					if chunk > 138 {
						chunk = 138
					}
					out = append(out, clSymbol{symbol: 18, extraBits: 7, extraValue: uint16(chunk - 11)})
					n -= chunk
				}
			}
		} else {
			out = append(out, clSymbol{symbol: lengths[i]})
			n := runLen - 1
			for n > 0 {
				if n < 3 {
					for ; n > 0; n-- {
						out = append(out, clSymbol{symbol: lengths[i]})
					}
					break
				}
				chunk := 6
				if n < chunk {
					chunk = n
				}
				for chunk >= 3 {
					rem := n - chunk
					if rem == 0 || rem >= 3 {
						break
					}
					chunk--
				}
				out = append(out, clSymbol{symbol: 16, extraBits: 2, extraValue: uint16(chunk - 3)})
				n -= chunk
			}
		}
		i += runLen
	}

	for _, s := range out {
		if s.symbol > 18 {
			return nil, ErrBadRunLength
		}
	}
	return out, nil
}
