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
	"fmt"
	"image/color"
	"sort"
)

// paletteResult is the outcome of scanning an INDEXED_COLOR raster: the
// final (possibly tRNS-sorted) palette, the per-pixel index into it, and
// enough bookkeeping to emit PLTE, tRNS, and hIST.
type paletteResult struct {
	colors       [][4]byte // final order: RGBA, first-seen order unless trns sorts it
	pixelIndices []uint8   // one entry per input pixel
	counts       []int64   // histogram aligned with colors
	trnsLen      int       // number of leading tRNS entries to emit (0 = omit chunk)
}

// buildPalette scans raster (width*height RGBA quadruplets) and builds
// the colour table an INDEXED_COLOR image needs. Colours are collected
// in first-seen order (the same chronological-insertion-order principle
// package lz77 uses for its match table, so output is deterministic
// across runs on identical input); when trns is set, the table is then
// stably re-sorted so every fully-opaque entry trails every translucent
// one, letting the tRNS chunk omit a trailing run of 255s.
func buildPalette(raster []byte, width, height int, trns bool, background *color.NRGBA, bitDepth uint8) (*paletteResult, error) {
	n := width * height
	colorIndex := make(map[[4]byte]int, 256)
	var colors [][4]byte
	var counts []int64
	rawIndices := make([]int, n)

	for i := 0; i < n; i++ {
		var c [4]byte
		copy(c[:], raster[i*4:i*4+4])
		idx, ok := colorIndex[c]
		if !ok {
			idx = len(colors)
			colorIndex[c] = idx
			colors = append(colors, c)
			counts = append(counts, 0)
		}
		counts[idx]++
		rawIndices[i] = idx
	}

	if background != nil {
		bc := [4]byte{background.R, background.G, background.B, background.A}
		if _, ok := colorIndex[bc]; !ok {
			colorIndex[bc] = len(colors)
			colors = append(colors, bc)
			counts = append(counts, 0)
		}
	}

	limit := 1 << bitDepth
	if len(colors) > limit {
		return nil, fmt.Errorf("png: %d distinct colours exceed the %d entries a %d-bit palette can index: %w",
			len(colors), limit, bitDepth, ErrPaletteOverflow)
	}

	order := make([]int, len(colors))
	for i := range order {
		order[i] = i
	}
	if trns {
		sort.SliceStable(order, func(i, j int) bool {
			oi, oj := order[i], order[j]
			opaqueI := colors[oi][3] == 255
			opaqueJ := colors[oj][3] == 255
			return opaqueI == false && opaqueJ == true
		})
	}

	newColors := make([][4]byte, len(colors))
	newCounts := make([]int64, len(colors))
	remap := make([]uint8, len(colors))
	for newIdx, oldIdx := range order {
		newColors[newIdx] = colors[oldIdx]
		newCounts[newIdx] = counts[oldIdx]
		remap[oldIdx] = uint8(newIdx)
	}

	trnsLen := 0
	if trns {
		for i := len(newColors) - 1; i >= 0; i-- {
			if newColors[i][3] != 255 {
				trnsLen = i + 1
				break
			}
		}
	}

	pixelIndices := make([]uint8, n)
	for i, old := range rawIndices {
		pixelIndices[i] = remap[old]
	}

	return &paletteResult{
		colors:       newColors,
		pixelIndices: pixelIndices,
		counts:       newCounts,
		trnsLen:      trnsLen,
	}, nil
}

func (p *paletteResult) plteChunkData() []byte {
	data := make([]byte, 0, len(p.colors)*3)
	for _, c := range p.colors {
		data = append(data, c[0], c[1], c[2])
	}
	return data
}

func (p *paletteResult) trnsChunkData() []byte {
	if p.trnsLen == 0 {
		return nil
	}
	data := make([]byte, p.trnsLen)
	for i := 0; i < p.trnsLen; i++ {
		data[i] = p.colors[i][3]
	}
	return data
}

func (p *paletteResult) histChunkData() []byte {
	data := make([]byte, 0, len(p.counts)*2)
	for _, c := range p.counts {
		freq := scaleHistogramFrequency(c)
		data = append(data, byte(freq>>8), byte(freq))
	}
	return data
}

// scaleHistogramFrequency clamps a raw occurrence count into hIST's
// 16-bit range without ever rounding a nonzero count down to zero (PNG
// specification section 11.3.3.2: "the value 0 is invalid").
func scaleHistogramFrequency(count int64) uint16 {
	if count <= 0 {
		return 0
	}
	if count > 0xFFFF {
		return 0xFFFF
	}
	return uint16(count)
}
