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

// Length and distance code tables per RFC 1951 section 3.2.5. These live
// here, not in package deflate, because the matcher itself needs them to
// turn a raw (length, distance) pair into the litlen/dist symbol a
// dynamic Huffman block counts frequencies over; deflate reuses the same
// functions when it emits the final bitstream, so the two packages can
// never disagree about which code a given length or distance maps to.

// lengthBase[i] and lengthExtraBits[i] describe litlen symbol 257+i: the
// smallest length that symbol covers, and how many extra bits follow it
// to select the exact length within its range.
var (
	lengthBase = [29]int{
		3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
		15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
		67, 83, 99, 115, 131, 163, 195, 227, 258,
	}
	lengthExtraBits = [29]int{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
		1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
		4, 4, 4, 4, 5, 5, 5, 5, 0,
	}
)

// distanceBase[i] and distanceExtraBits[i] describe distance symbol i.
var (
	distanceBase = [30]int{
		1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
		33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
		1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
	}
	distanceExtraBits = [30]int{
		0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
		4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
		9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
	}
)

// LengthToCode maps a match length (3..258) to its litlen symbol (257..285)
// plus the extra bits needed to reconstruct the exact length from the
// symbol's base value.
func LengthToCode(length int) (code, extraBits, extraValue int) {
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= lengthBase[i] {
			return 257 + i, lengthExtraBits[i], length - lengthBase[i]
		}
	}
	return 257, 0, 0
}

// DistanceToCode maps a match distance (1..32768) to its distance symbol
// (0..29) plus the extra bits needed to reconstruct the exact distance.
func DistanceToCode(distance int) (code, extraBits, extraValue int) {
	for i := len(distanceBase) - 1; i >= 0; i-- {
		if distance >= distanceBase[i] {
			return i, distanceExtraBits[i], distance - distanceBase[i]
		}
	}
	return 0, 0, 0
}
