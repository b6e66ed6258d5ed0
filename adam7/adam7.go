// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package adam7 implements PNG's Adam7 interlacing scheme (PNG
// specification section 8.2): seven passes, each selecting a strided
// subset of an image's rows and columns.
package adam7

// Pass describes one Adam7 pass as the strided selection
// (xStart, yStart, xStep, yStep) of pixels it contributes.
type Pass struct {
	XStart, YStart int
	XStep, YStep   int
}

// Passes returns Adam7's seven fixed passes in transmission order.
func Passes() [7]Pass {
	return [7]Pass{
		{XStart: 0, YStart: 0, XStep: 8, YStep: 8},
		{XStart: 4, YStart: 0, XStep: 8, YStep: 8},
		{XStart: 0, YStart: 4, XStep: 4, YStep: 8},
		{XStart: 2, YStart: 0, XStep: 4, YStep: 4},
		{XStart: 0, YStart: 2, XStep: 2, YStep: 4},
		{XStart: 1, YStart: 0, XStep: 2, YStep: 2},
		{XStart: 0, YStart: 1, XStep: 1, YStep: 2},
	}
}

// Dimensions returns the width and height of the sub-image this pass
// selects from a full image of the given size: the count of columns
// and rows this pass's stride touches.
func (p Pass) Dimensions(width, height int) (w, h int) {
	w = countSteps(width, p.XStart, p.XStep)
	h = countSteps(height, p.YStart, p.YStep)
	return w, h
}

func countSteps(total, start, step int) int {
	if total <= start {
		return 0
	}
	return (total - start + step - 1) / step
}
