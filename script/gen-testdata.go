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

// gen-testdata.go makes a red-blue gradient test image, resizes it with
// golang.org/x/image/draw, and encodes the result with this module's own
// png package (rather than the standard library's image/png), writing a
// single TrueColorAlpha PNG to stdout. No test in this module reads its
// output.
//
// Usage: go run gen-testdata.go -width 64 -height 64 > foo.png

import (
	"flag"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/draw"

	"github.com/imaya/pngenc/png"
	"github.com/imaya/pngenc/pngfilter"
)

var (
	width  = flag.Int("width", 64, "output image width")
	height = flag.Int("height", 64, "output image height")
)

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Parse()

	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 0x11),
				G: 0x00,
				B: uint8(y * 0x11),
				A: 0xFF,
			})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	raster := make([]byte, *width**height*4)
	for y := 0; y < *height; y++ {
		for x := 0; x < *width; x++ {
			c := dst.RGBAAt(x, y)
			i := (y**width + x) * 4
			raster[i], raster[i+1], raster[i+2], raster[i+3] = c.R, c.G, c.B, c.A
		}
	}

	out, err := png.Encode(raster, png.Params{
		Width:      *width,
		Height:     *height,
		BitDepth:   8,
		ColourType: png.TrueColorAlpha,
		Filter:     pngfilter.FilterHeuristic,
	})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
