// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build ignore

package main

// print-magic-numbers.go prints the wire-format constants this module's
// encoders bake in: RFC 1951's LZ77 window and match-length bounds and
// RFC 1950's zlib header bytes, so they can be eyeballed against the
// RFCs without reading deflate/lz77 source.
//
// Usage: go run print-magic-numbers.go

import (
	"fmt"
	"os"

	"github.com/imaya/pngenc/lz77"
)

func main() {
	fmt.Printf("lz77.MinLength = %d\n", lz77.MinLength)
	fmt.Printf("lz77.MaxLength = %d\n", lz77.MaxLength)
	fmt.Printf("lz77.Window    = %d\n", lz77.Window)

	// RFC 1950 section 2.2: CMF/FLG must satisfy (CMF*256+FLG) % 31 == 0.
	// CM=8 (deflate), CINFO=7 (32K window) gives CMF=0x78.
	cmf := byte(0x78)
	for _, flevel := range []byte{0, 1, 2, 3} {
		flg := flevel << 6
		for (int(cmf)*256+int(flg))%31 != 0 {
			flg++
		}
		fmt.Printf("FLEVEL=%d -> CMF=0x%02X FLG=0x%02X\n", flevel, cmf, flg)
	}
	os.Exit(0)
}
