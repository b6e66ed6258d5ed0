// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package adam7

import "testing"

func TestPassesMatchSpecifiedStrides(t *testing.T) {
	want := [7]Pass{
		{0, 0, 8, 8},
		{4, 0, 8, 8},
		{0, 4, 4, 8},
		{2, 0, 4, 4},
		{0, 2, 2, 4},
		{1, 0, 2, 2},
		{0, 1, 1, 2},
	}
	got := Passes()
	if got != want {
		t.Errorf("Passes() = %+v, want %+v", got, want)
	}
}

func TestDimensionsSumToFullImage(t *testing.T) {
	for _, size := range []struct{ w, h int }{
		{8, 8}, {1, 1}, {5, 3}, {64, 64}, {17, 23},
	} {
		var total int
		for _, p := range Passes() {
			w, h := p.Dimensions(size.w, size.h)
			total += w * h
		}
		if total != size.w*size.h {
			t.Errorf("size %dx%d: passes covered %d pixels, want %d", size.w, size.h, total, size.w*size.h)
		}
	}
}

func TestDimensionsZeroForTinyImages(t *testing.T) {
	p := Pass{XStart: 4, YStart: 0, XStep: 8, YStep: 8}
	w, h := p.Dimensions(4, 8)
	if w != 0 {
		t.Errorf("width = %d, want 0 (image narrower than XStart+1)", w)
	}
	if h != 1 {
		t.Errorf("height = %d, want 1", h)
	}
}
