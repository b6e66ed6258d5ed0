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
	"image/color"
	"math"
	"time"

	"github.com/imaya/pngenc/deflate"
)

// CHRM carries the white point and primary chromaticities the cHRM
// chunk transmits (PNG specification section 11.3.3.2), in CIE xy
// coordinates.
type CHRM struct {
	WhiteX, WhiteY float64
	RedX, RedY     float64
	GreenX, GreenY float64
	BlueX, BlueY   float64
}

// SBIT records the original, pre-PNG-encoding sample precision (PNG
// specification section 11.3.3.3). Only the fields relevant to the
// image's colour type are written.
type SBIT struct {
	Gray             uint8
	Red, Green, Blue uint8
	Alpha            uint8
}

// SRGBIntent is sRGB's rendering intent byte (PNG specification section
// 11.3.3.5).
type SRGBIntent uint8

const (
	SRGBPerceptual           SRGBIntent = 0
	SRGBRelativeColorimetric SRGBIntent = 1
	SRGBSaturation           SRGBIntent = 2
	SRGBAbsoluteColorimetric SRGBIntent = 3
)

// ICCP is an embedded ICC colour profile (PNG specification section
// 11.3.3.4); Profile is compressed with deflate.ZlibCompress before
// being written.
type ICCP struct {
	Name    string
	Profile []byte
}

// PHYS is the pHYs chunk's physical pixel dimensions (PNG specification
// section 11.3.5.3). Unit is 0 (unknown aspect ratio only) or 1 (metre).
type PHYS struct {
	PPUX, PPUY uint32
	Unit       byte
}

// SPLTSample is one entry of a suggested palette.
type SPLTSample struct {
	Red, Green, Blue, Alpha uint16
	Frequency               uint16
}

// SPLTEntry is one sPLT chunk: a named suggested reduced-colour palette
// (PNG specification section 11.3.4.5). SampleDepth is 8 or 16.
type SPLTEntry struct {
	Name        string
	SampleDepth uint8
	Samples     []SPLTSample
}

// TextEntry is one tEXt or zTXt entry: a Latin-1 keyword/text pair (PNG
// specification section 11.3.4.3).
type TextEntry struct {
	Keyword, Text string
}

// ITextEntry is one iTXt entry (PNG specification section 11.3.4.4),
// UTF-8 text with an optional language tag and translated keyword.
// When Compressed is set, Text is zlib-compressed before writing.
type ITextEntry struct {
	Keyword, LanguageTag, TranslatedKeyword, Text string
	Compressed                                    bool
}

func encodeFixedPoint(v float64) []byte {
	scaled := uint32(math.Round(v * 100000))
	return []byte{byte(scaled >> 24), byte(scaled >> 16), byte(scaled >> 8), byte(scaled)}
}

func gammaChunkData(gamma float64) []byte {
	return encodeFixedPoint(gamma)
}

func chrmChunkData(c *CHRM) []byte {
	data := make([]byte, 0, 32)
	for _, v := range []float64{c.WhiteX, c.WhiteY, c.RedX, c.RedY, c.GreenX, c.GreenY, c.BlueX, c.BlueY} {
		data = append(data, encodeFixedPoint(v)...)
	}
	return data
}

func sbitChunkData(s *SBIT, ct ColourType) []byte {
	switch ct {
	case GrayScale:
		return []byte{s.Gray}
	case GrayScaleAlpha:
		return []byte{s.Gray, s.Alpha}
	case TrueColor, IndexedColor:
		return []byte{s.Red, s.Green, s.Blue}
	case TrueColorAlpha:
		return []byte{s.Red, s.Green, s.Blue, s.Alpha}
	}
	return nil
}

func srgbChunkData(intent SRGBIntent) []byte {
	return []byte{byte(intent)}
}

func iccpChunkData(i *ICCP) ([]byte, error) {
	compressed, err := deflate.ZlibCompress(i.Profile, deflate.Config{BlockType: deflate.Dynamic, Final: true})
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(i.Name)+2+len(compressed))
	data = append(data, i.Name...)
	data = append(data, 0, 0) // keyword terminator, compression method 0
	data = append(data, compressed...)
	return data, nil
}

func physChunkData(p *PHYS) []byte {
	return []byte{
		byte(p.PPUX >> 24), byte(p.PPUX >> 16), byte(p.PPUX >> 8), byte(p.PPUX),
		byte(p.PPUY >> 24), byte(p.PPUY >> 16), byte(p.PPUY >> 8), byte(p.PPUY),
		p.Unit,
	}
}

func timeChunkData(t *time.Time) []byte {
	u := t.UTC()
	year := u.Year()
	return []byte{
		byte(year >> 8), byte(year),
		byte(u.Month()), byte(u.Day()),
		byte(u.Hour()), byte(u.Minute()), byte(u.Second()),
	}
}

func textChunkData(e TextEntry) []byte {
	data := make([]byte, 0, len(e.Keyword)+1+len(e.Text))
	data = append(data, e.Keyword...)
	data = append(data, 0)
	data = append(data, e.Text...)
	return data
}

func ztxtChunkData(e TextEntry) ([]byte, error) {
	compressed, err := deflate.ZlibCompress([]byte(e.Text), deflate.Config{BlockType: deflate.Dynamic, Final: true})
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(e.Keyword)+2+len(compressed))
	data = append(data, e.Keyword...)
	data = append(data, 0, 0) // keyword terminator, compression method 0
	data = append(data, compressed...)
	return data, nil
}

func itxtChunkData(e ITextEntry) ([]byte, error) {
	textBytes := []byte(e.Text)
	compressionFlag := byte(0)
	if e.Compressed {
		compressed, err := deflate.ZlibCompress(textBytes, deflate.Config{BlockType: deflate.Dynamic, Final: true})
		if err != nil {
			return nil, err
		}
		textBytes = compressed
		compressionFlag = 1
	}
	data := make([]byte, 0, len(e.Keyword)+2+len(e.LanguageTag)+1+len(e.TranslatedKeyword)+1+len(textBytes))
	data = append(data, e.Keyword...)
	data = append(data, 0)
	data = append(data, compressionFlag, 0) // compression flag, compression method 0
	data = append(data, e.LanguageTag...)
	data = append(data, 0)
	data = append(data, e.TranslatedKeyword...)
	data = append(data, 0)
	data = append(data, textBytes...)
	return data, nil
}

// bkgdChunkData builds bKGD's payload, whose shape depends on colour
// type (PNG specification section 11.3.5.1): a palette index for
// IndexedColor, a single grey sample for the grey types, or three RGB
// samples for the colour types.
func bkgdChunkData(ct ColourType, background *color.NRGBA, pal *paletteResult) []byte {
	switch ct {
	case IndexedColor:
		for i, c := range pal.colors {
			if c[0] == background.R && c[1] == background.G && c[2] == background.B && c[3] == background.A {
				return []byte{byte(i)}
			}
		}
		return []byte{0}
	case GrayScale, GrayScaleAlpha:
		v := uint16(background.R)
		return []byte{byte(v >> 8), byte(v)}
	default: // TrueColor, TrueColorAlpha
		r, g, b := uint16(background.R), uint16(background.G), uint16(background.B)
		return []byte{
			byte(r >> 8), byte(r),
			byte(g >> 8), byte(g),
			byte(b >> 8), byte(b),
		}
	}
}

func spltChunkData(e SPLTEntry) []byte {
	data := make([]byte, 0, len(e.Name)+2+len(e.Samples)*10)
	data = append(data, e.Name...)
	data = append(data, 0, e.SampleDepth)
	for _, s := range e.Samples {
		if e.SampleDepth == 16 {
			data = append(data,
				byte(s.Red>>8), byte(s.Red),
				byte(s.Green>>8), byte(s.Green),
				byte(s.Blue>>8), byte(s.Blue),
				byte(s.Alpha>>8), byte(s.Alpha),
				byte(s.Frequency>>8), byte(s.Frequency),
			)
		} else {
			data = append(data,
				byte(s.Red), byte(s.Green), byte(s.Blue), byte(s.Alpha),
				byte(s.Frequency>>8), byte(s.Frequency),
			)
		}
	}
	return data
}
