// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package pngfilter

import (
	"bytes"
	"testing"
)

func TestFilterNoneIsIdentity(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	dst := make([]byte, len(raw))
	got := Apply(FilterNone, raw, nil, 1, dst)
	if got != FilterNone {
		t.Fatalf("got filter %v, want FilterNone", got)
	}
	if !bytes.Equal(dst, raw) {
		t.Errorf("dst = %v, want %v", dst, raw)
	}
}

func TestFilterSubUsesLeftNeighbor(t *testing.T) {
	raw := []byte{10, 20, 5, 5}
	dst := make([]byte, len(raw))
	Apply(FilterSub, raw, nil, 2, dst)
	want := []byte{10, 20, byte(5 - 10 + 256), byte(5 - 20 + 256)}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestFilterUpUsesPriorLine(t *testing.T) {
	raw := []byte{10, 20, 30}
	prior := []byte{1, 2, 3}
	dst := make([]byte, len(raw))
	Apply(FilterUp, raw, prior, 1, dst)
	want := []byte{9, 18, 27}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestFilterUpWithNilPriorActsAsZero(t *testing.T) {
	raw := []byte{5, 6, 7}
	dst := make([]byte, len(raw))
	Apply(FilterUp, raw, nil, 1, dst)
	if !bytes.Equal(dst, raw) {
		t.Errorf("dst = %v, want %v", dst, raw)
	}
}

func TestFilterRoundTripsViaUnfilter(t *testing.T) {
	raw := []byte{5, 250, 10, 200, 1, 254}
	prior := []byte{100, 100, 100, 100, 100, 100}
	bpp := 2
	for _, ft := range []FilterType{FilterNone, FilterSub, FilterUp, FilterAverage, FilterPaeth} {
		dst := make([]byte, len(raw))
		Apply(ft, raw, prior, bpp, dst)
		reconstructed := unfilterForTest(ft, dst, prior, bpp)
		if !bytes.Equal(reconstructed, raw) {
			t.Errorf("filter %v: reconstructed %v, want %v", ft, reconstructed, raw)
		}
	}
}

func TestHeuristicPicksMinimalAbsoluteSum(t *testing.T) {
	raw := bytes.Repeat([]byte{7}, 16) // constant line: Sub/Up should beat None
	prior := bytes.Repeat([]byte{7}, 16)
	dst := make([]byte, len(raw))
	used := Apply(FilterHeuristic, raw, prior, 1, dst)
	if used != FilterUp && used != FilterSub && used != FilterAverage && used != FilterPaeth {
		t.Fatalf("heuristic picked %v, expected a filter that zeroes a constant line", used)
	}
	for _, b := range dst {
		if b != 0 {
			t.Fatalf("expected an all-zero filtered line for a constant input, got %v", dst)
		}
	}
}

// unfilterForTest is a minimal decoder used only to verify Apply's
// filters are invertible; this package does not expose a public decoder
// since decoding is out of scope.
func unfilterForTest(filter FilterType, filtered, prior []byte, bpp int) []byte {
	raw := make([]byte, len(filtered))
	for i, f := range filtered {
		switch filter {
		case FilterSub:
			raw[i] = f + left(raw, i, bpp)
		case FilterUp:
			raw[i] = f + up(prior, i)
		case FilterAverage:
			a := int(left(raw, i, bpp))
			b := int(up(prior, i))
			raw[i] = f + byte((a+b)/2)
		case FilterPaeth:
			a := left(raw, i, bpp)
			b := up(prior, i)
			c := upLeft(raw, prior, i, bpp)
			raw[i] = f + paeth(a, b, c)
		default:
			raw[i] = f
		}
	}
	return raw
}
