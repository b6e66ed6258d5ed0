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

import "errors"

// Sentinel errors this package can return. Each corresponds to one of
// the error kinds a PNG encoder can detect at encode time; decoding
// kinds (UnsupportedCompressionMethod, which only ever arises while
// reading a chunk stream back) are declared for completeness but this
// package never returns them, since decoding is out of scope.
var (
	// ErrInvalidParameter covers non-positive dimensions, an
	// out-of-range bit depth, or an invalid bit-depth/colour-type
	// combination. A palette too large for 2^BitDepth entries is
	// reported as ErrPaletteOverflow instead.
	ErrInvalidParameter = errors.New("png: invalid parameter")

	// ErrInputTooLarge is returned when raster's length is inconsistent
	// with Params.Width * Params.Height * 4 (RGBA, 8 bits each).
	ErrInputTooLarge = errors.New("png: raster length does not match width*height*4")

	// ErrPaletteOverflow is returned when an INDEXED_COLOR image (plus
	// an appended background colour, when requested) needs more
	// distinct colours than 2^BitDepth can index.
	ErrPaletteOverflow = errors.New("png: palette exceeds 2^bit_depth entries")

	// ErrUnsupportedCompressionMethod would indicate a chunk using a
	// non-DEFLATE codec; this package only ever emits CM=8, so nothing
	// in it can produce this error.
	ErrUnsupportedCompressionMethod = errors.New("png: unsupported compression method")
)
