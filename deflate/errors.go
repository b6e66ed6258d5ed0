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

import "errors"

// Sentinel errors for the conditions this package can detect. Each one
// corresponds to an internal invariant violation; seeing one from
// ordinary input data indicates a bug in this package, not bad input,
// since Compress and ZlibCompress accept any byte sequence.
var (
	// ErrBadRunLength is returned if the code-length run-length encoder
	// ever produces a tree-transmit symbol outside {0..18}.
	ErrBadRunLength = errors.New("deflate: run-length encoder produced an out-of-range symbol")

	// ErrInvalidLengthCode / ErrInvalidDistanceCode are returned if an
	// LZ77 token carries a length or distance outside the ranges
	// package lz77's tables cover.
	ErrInvalidLengthCode   = errors.New("deflate: token length has no RFC 1951 code")
	ErrInvalidDistanceCode = errors.New("deflate: token distance has no RFC 1951 code")
)
