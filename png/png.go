// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package png assembles PNG files: an IHDR describing the raster,
// optional ancillary chunks, one or more IDAT chunks holding the
// zlib-compressed, per-scanline-filtered image data, and a trailing
// IEND. It encodes only; there is no decoder.
package png

import (
	"bytes"
	"image/color"
	"io"
	"time"

	"github.com/imaya/pngenc/deflate"
	"github.com/imaya/pngenc/pngfilter"
)

// idatChunkSize caps a single IDAT chunk's payload so very large images
// don't produce one chunk with a multi-gigabyte length field; PNG
// readers expect IDAT to be split into conveniently sized pieces and
// reassembled before inflating.
const idatChunkSize = 1 << 16

// Params configures one PNG encode. The zero value is a TrueColorAlpha,
// 8-bit, non-interlaced, unfiltered image with no ancillary chunks.
type Params struct {
	Width, Height int
	BitDepth      uint8 // 0 means 8; a zero ColourType (GrayScale) with BitDepth 0 is read as TrueColorAlpha
	ColourType    ColourType
	Filter        pngfilter.FilterType
	Interlace     InterlaceMethod
	Deflate       deflate.Config

	// TRNS requests an indexed-colour image keep translucent palette
	// entries (and emit tRNS) rather than treating alpha as opaque.
	TRNS bool

	Gamma       *float64
	Chrominance *CHRM
	SBIT        *SBIT
	SRGB        *SRGBIntent
	ICCP        *ICCP
	Background  *color.NRGBA
	Histogram   bool
	Physical    *PHYS
	Suggested   []SPLTEntry
	Time        *time.Time
	Text        []TextEntry
	ZText       []TextEntry
	IText       []ITextEntry
}

var (
	typeIHDR = [4]byte{'I', 'H', 'D', 'R'}
	typeCHRM = [4]byte{'c', 'H', 'R', 'M'}
	typeGAMA = [4]byte{'g', 'A', 'M', 'A'}
	typeICCP = [4]byte{'i', 'C', 'C', 'P'}
	typeSBIT = [4]byte{'s', 'B', 'I', 'T'}
	typeSRGB = [4]byte{'s', 'R', 'G', 'B'}
	typePLTE = [4]byte{'P', 'L', 'T', 'E'}
	typeBKGD = [4]byte{'b', 'K', 'G', 'D'}
	typeHIST = [4]byte{'h', 'I', 'S', 'T'}
	typeTRNS = [4]byte{'t', 'R', 'N', 'S'}
	typePHYS = [4]byte{'p', 'H', 'Y', 's'}
	typeSPLT = [4]byte{'s', 'P', 'L', 'T'}
	typeTIME = [4]byte{'t', 'I', 'M', 'E'}
	typeTEXT = [4]byte{'t', 'E', 'X', 't'}
	typeZTXT = [4]byte{'z', 'T', 'X', 't'}
	typeITXT = [4]byte{'i', 'T', 'X', 't'}
	typeIDAT = [4]byte{'I', 'D', 'A', 'T'}
	typeIEND = [4]byte{'I', 'E', 'N', 'D'}
)

// Encode builds a complete PNG file from raster, a tightly packed
// Width*Height RGBA8 canvas (4 bytes per pixel, row-major, no padding).
func Encode(raster []byte, p Params) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, raster, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes a complete PNG file to w, in the chunk order PNG
// specification section 5.6 requires.
func EncodeTo(w io.Writer, raster []byte, p Params) error {
	if p.BitDepth == 0 {
		if p.ColourType == 0 {
			p.ColourType = TrueColorAlpha
		}
		p.BitDepth = 8
	}
	if err := validateParams(raster, &p); err != nil {
		return err
	}

	var pal *paletteResult
	if p.ColourType == IndexedColor {
		var err error
		pal, err = buildPalette(raster, p.Width, p.Height, p.TRNS, p.Background, p.BitDepth)
		if err != nil {
			return err
		}
	}

	out := make([]byte, 0, len(raster)/2+1024)
	out = append(out, signature[:]...)
	out = writeChunk(out, typeIHDR, ihdrChunkData(&p))

	if p.Chrominance != nil {
		out = writeChunk(out, typeCHRM, chrmChunkData(p.Chrominance))
	}
	if p.Gamma != nil {
		out = writeChunk(out, typeGAMA, gammaChunkData(*p.Gamma))
	}
	if p.ICCP != nil {
		data, err := iccpChunkData(p.ICCP)
		if err != nil {
			return err
		}
		out = writeChunk(out, typeICCP, data)
	}
	if p.SBIT != nil {
		out = writeChunk(out, typeSBIT, sbitChunkData(p.SBIT, p.ColourType))
	}
	if p.SRGB != nil {
		out = writeChunk(out, typeSRGB, srgbChunkData(*p.SRGB))
	}

	if p.ColourType == IndexedColor {
		out = writeChunk(out, typePLTE, pal.plteChunkData())
	}
	if p.Background != nil {
		out = writeChunk(out, typeBKGD, bkgdChunkData(p.ColourType, p.Background, pal))
	}
	if p.ColourType == IndexedColor && p.Histogram {
		out = writeChunk(out, typeHIST, pal.histChunkData())
	}
	if p.ColourType == IndexedColor && p.TRNS {
		if trns := pal.trnsChunkData(); trns != nil {
			out = writeChunk(out, typeTRNS, trns)
		}
	}

	if p.Physical != nil {
		out = writeChunk(out, typePHYS, physChunkData(p.Physical))
	}
	for _, s := range p.Suggested {
		out = writeChunk(out, typeSPLT, spltChunkData(s))
	}
	if p.Time != nil {
		out = writeChunk(out, typeTIME, timeChunkData(p.Time))
	}
	for _, t := range p.Text {
		out = writeChunk(out, typeTEXT, textChunkData(t))
	}
	for _, t := range p.ZText {
		data, err := ztxtChunkData(t)
		if err != nil {
			return err
		}
		out = writeChunk(out, typeZTXT, data)
	}
	for _, t := range p.IText {
		data, err := itxtChunkData(t)
		if err != nil {
			return err
		}
		out = writeChunk(out, typeITXT, data)
	}

	sampler := &pixelSampler{ct: p.ColourType, raster: raster, width: p.Width, palette: pal}
	imageData := buildImageData(sampler, p.Width, p.Height, p.BitDepth, p.Filter, p.Interlace)
	deflateCfg := p.Deflate
	deflateCfg.Final = true
	compressed, err := deflate.ZlibCompress(imageData, deflateCfg)
	if err != nil {
		return err
	}
	for off := 0; off < len(compressed); off += idatChunkSize {
		end := off + idatChunkSize
		if end > len(compressed) {
			end = len(compressed)
		}
		out = writeChunk(out, typeIDAT, compressed[off:end])
	}
	out = writeChunk(out, typeIEND, nil)

	_, err = w.Write(out)
	return err
}
