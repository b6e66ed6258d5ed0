// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package png

// ColourType is one of PNG's five colour types (PNG specification
// section 11.2.2); its values match the numeric codes the IHDR chunk
// carries, so a Params.ColourType can be written directly into IHDR.
type ColourType uint8

const (
	GrayScale      ColourType = 0
	TrueColor      ColourType = 2
	IndexedColor   ColourType = 3
	GrayScaleAlpha ColourType = 4
	TrueColorAlpha ColourType = 6
)

// InterlaceMethod selects IHDR's interlace method byte.
type InterlaceMethod uint8

const (
	InterlaceNone  InterlaceMethod = 0
	InterlaceAdam7 InterlaceMethod = 1
)

// samplesPerPixel returns how many channel samples one pixel of ct
// carries (e.g. 4 for TrueColorAlpha's R,G,B,A; 1 for an IndexedColor
// palette index).
func samplesPerPixel(ct ColourType) int {
	switch ct {
	case GrayScale, IndexedColor:
		return 1
	case GrayScaleAlpha:
		return 2
	case TrueColor:
		return 3
	case TrueColorAlpha:
		return 4
	}
	return 0
}

// validBitDepths lists, per PNG specification section 11.2.2 table, the
// bit depths legal for each colour type.
var validBitDepths = map[ColourType][]uint8{
	GrayScale:      {1, 2, 4, 8, 16},
	TrueColor:      {8, 16},
	IndexedColor:   {1, 2, 4, 8},
	GrayScaleAlpha: {8, 16},
	TrueColorAlpha: {8, 16},
}

func bitDepthValid(ct ColourType, depth uint8) bool {
	for _, d := range validBitDepths[ct] {
		if d == depth {
			return true
		}
	}
	return false
}
