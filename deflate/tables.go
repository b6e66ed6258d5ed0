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

import "github.com/imaya/pngenc/huffman"

// fixedLitLenLengths and fixedDistLengths are RFC 1951 section 3.2.6's
// fixed Huffman code lengths. They describe the same distribution the
// standard mandates; the actual codes are derived through the same
// canonical-code machinery package huffman uses for dynamic blocks
// (huffman.CodesFromLengths), so fixed and dynamic blocks share one
// source of truth for "lengths to codes" instead of hand-transcribing
// RFC 1951's fixed code table a second time.
//
// fixedDistLengths has 32 entries, not 30: RFC 1951 section 3.2.6 notes
// that symbols 30-31 "will never actually occur in the compressed data"
// but are still assigned 5-bit codes so the alphabet is a complete,
// canonical 32-leaf code (Kraft sum 32*2^-5 = 1) rather than the
// 30-symbol distance alphabet's 2-leaf-short incomplete one. Only codes
// 0-29 are ever looked up (emitTokens rejects anything outside that
// range), but CodesFromLengths needs a complete input to assign codes
// at all.
var (
	fixedLitLenLengths [288]uint8
	fixedDistLengths   [32]uint8

	fixedLitLenCodes []uint16
	fixedDistCodes   []uint16
)

func init() {
	for i := 0; i <= 143; i++ {
		fixedLitLenLengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		fixedLitLenLengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		fixedLitLenLengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		fixedLitLenLengths[i] = 8
	}
	for i := range fixedDistLengths {
		fixedDistLengths[i] = 5
	}

	codes, err := huffman.CodesFromLengths(fixedLitLenLengths[:])
	if err != nil {
		panic("deflate: fixed literal/length table is not canonical: " + err.Error())
	}
	fixedLitLenCodes = codes

	codes, err = huffman.CodesFromLengths(fixedDistLengths[:])
	if err != nil {
		panic("deflate: fixed distance table is not canonical: " + err.Error())
	}
	fixedDistCodes = codes
}

// codeLengthOrder is RFC 1951 section 3.2.7's transmission order for the
// 19-symbol code-length alphabet: the symbols most likely to be used (the
// run-length markers first) go first, so trailing unused entries can be
// trimmed via HCLEN.
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}
