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

import (
	"github.com/imaya/pngenc/adam7"
	"github.com/imaya/pngenc/pngfilter"
)

// pixelSampler extracts the per-channel sample values PNG needs for one
// pixel of raster, an RGBA8 canvas buffer, projected onto the image's
// requested colour type. For IndexedColor the single returned sample is
// already a palette index, not a scaled channel value.
type pixelSampler struct {
	ct      ColourType
	raster  []byte
	width   int
	palette *paletteResult
}

func (s *pixelSampler) samples(x, y int) []uint16 {
	i := (y*s.width + x) * 4
	switch s.ct {
	case GrayScale:
		return []uint16{uint16(s.raster[i])}
	case GrayScaleAlpha:
		return []uint16{uint16(s.raster[i]), uint16(s.raster[i+3])}
	case TrueColor:
		return []uint16{uint16(s.raster[i]), uint16(s.raster[i+1]), uint16(s.raster[i+2])}
	case TrueColorAlpha:
		return []uint16{uint16(s.raster[i]), uint16(s.raster[i+1]), uint16(s.raster[i+2]), uint16(s.raster[i+3])}
	case IndexedColor:
		return []uint16{uint16(s.palette.pixelIndices[y*s.width+x])}
	}
	return nil
}

// scaleSample widens or narrows an 8-bit channel value (as extracted by
// pixelSampler) to the target bit depth. IndexedColor values are palette
// indices, already in the palette's own domain, and pass through
// unscaled.
func scaleSample(v uint16, bitDepth uint8, indexed bool) uint16 {
	if indexed {
		return v
	}
	switch bitDepth {
	case 16:
		return v<<8 | v
	case 8:
		return v
	default:
		return v >> (8 - bitDepth)
	}
}

// packRow packs one scanline's per-pixel samples MSB-first into bytes at
// bitDepth bits per sample (PNG specification section 2.3): samples
// narrower than a byte share bytes; 16-bit samples are written high byte
// first; 8-bit samples are one byte each.
func packRow(samples []uint16, bitDepth uint8) []byte {
	switch {
	case bitDepth == 16:
		out := make([]byte, 0, len(samples)*2)
		for _, v := range samples {
			out = append(out, byte(v>>8), byte(v))
		}
		return out
	case bitDepth == 8:
		out := make([]byte, len(samples))
		for i, v := range samples {
			out[i] = byte(v)
		}
		return out
	default:
		out := make([]byte, 0, (len(samples)*int(bitDepth)+7)/8)
		var acc uint16
		var nbits uint
		for _, v := range samples {
			acc = (acc << bitDepth) | (v & ((1 << bitDepth) - 1))
			nbits += uint(bitDepth)
			for nbits >= 8 {
				nbits -= 8
				out = append(out, byte(acc>>nbits))
			}
			acc &= (1 << nbits) - 1
		}
		if nbits > 0 {
			out = append(out, byte(acc<<(8-nbits)))
		}
		return out
	}
}

// bytesPerPixel returns PNG's "bpp" (PNG specification section 9.2):
// the rounded-up byte count one complete pixel occupies, used by the
// scanline filters to find a pixel's left neighbor. Never less than 1.
func bytesPerPixel(spp int, bitDepth uint8) int {
	bpp := (spp*int(bitDepth) + 7) / 8
	if bpp < 1 {
		bpp = 1
	}
	return bpp
}

// imagePass describes one strided projection of the source image: the
// single implicit pass for InterlaceNone, or one of Adam7's seven.
type imagePass struct {
	xStart, yStart, xStep, yStep int
}

func passesFor(interlace InterlaceMethod) []imagePass {
	if interlace == InterlaceNone {
		return []imagePass{{0, 0, 1, 1}}
	}
	passes := adam7.Passes()
	out := make([]imagePass, len(passes))
	for i, p := range passes {
		out[i] = imagePass{p.XStart, p.YStart, p.XStep, p.YStep}
	}
	return out
}

func (ip imagePass) dimensions(width, height int) (w, h int) {
	p := adam7.Pass{XStart: ip.xStart, YStart: ip.yStart, XStep: ip.xStep, YStep: ip.yStep}
	return p.Dimensions(width, height)
}

// buildImageData produces the full (possibly interlaced) filtered
// scanline stream IDAT compresses: one filter-type byte followed by
// bpp-aware filtered sample bytes, per scanline, per pass, concatenated
// in pass order.
func buildImageData(s *pixelSampler, width, height int, bitDepth uint8, filter pngfilter.FilterType, interlace InterlaceMethod) []byte {
	spp := samplesPerPixel(s.ct)
	indexed := s.ct == IndexedColor
	bpp := bytesPerPixel(spp, bitDepth)

	var out []byte
	for _, pass := range passesFor(interlace) {
		pw, ph := pass.dimensions(width, height)
		if pw == 0 || ph == 0 {
			continue
		}
		rowBytes := (pw*spp*int(bitDepth) + 7) / 8
		var prior []byte
		for row := 0; row < ph; row++ {
			y := pass.yStart + row*pass.yStep
			rowSamples := make([]uint16, 0, pw*spp)
			for col := 0; col < pw; col++ {
				x := pass.xStart + col*pass.xStep
				for _, v := range s.samples(x, y) {
					rowSamples = append(rowSamples, scaleSample(v, bitDepth, indexed))
				}
			}
			raw := packRow(rowSamples, bitDepth)

			filtered := make([]byte, rowBytes)
			used := pngfilter.Apply(filter, raw, prior, bpp, filtered)
			out = append(out, byte(used))
			out = append(out, filtered...)
			prior = raw
		}
	}
	return out
}
