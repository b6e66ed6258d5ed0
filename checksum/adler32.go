// Copyright 2026 The Pngenc Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package checksum

// adler32Mod is the modulus from RFC 1950 section 2.3: the largest prime
// smaller than 65536.
const adler32Mod = 65521

// Adler32 returns the Adler-32 checksum of b, as written (big-endian) into
// the zlib trailer.
func Adler32(b []byte) uint32 {
	var d Adler32Digest
	d.Write(b)
	return d.Sum32()
}

// Adler32Digest is an incremental Adler-32 accumulator. The zero value is
// seeded at (s1=1, s2=0) per RFC 1950 and is ready to use.
type Adler32Digest struct {
	s1, s2 uint32
	init   bool
}

// Write folds b into the running checksum. It never returns an error.
//
// The inner loop processes at most 5552 bytes between modulo reductions:
// that is the largest N for which 255*N*(N+1)/2 + (N+1)*(65521-1) cannot
// overflow a uint32, so s1 and s2 never need to be reduced more often than
// that to stay within range.
func (d *Adler32Digest) Write(b []byte) (int, error) {
	if !d.init {
		d.s1, d.s2 = 1, 0
		d.init = true
	}
	n := len(b)
	s1, s2 := d.s1, d.s2
	for len(b) > 0 {
		chunk := b
		if len(chunk) > 5552 {
			chunk = chunk[:5552]
		}
		for _, v := range chunk {
			s1 += uint32(v)
			s2 += s1
		}
		s1 %= adler32Mod
		s2 %= adler32Mod
		b = b[len(chunk):]
	}
	d.s1, d.s2 = s1, s2
	return n, nil
}

// Sum32 returns the checksum of all bytes written so far.
func (d *Adler32Digest) Sum32() uint32 {
	if !d.init {
		return 1
	}
	return (d.s2 << 16) | d.s1
}

// Reset returns the digest to its initial state so it can be reused.
func (d *Adler32Digest) Reset() {
	d.s1, d.s2 = 0, 0
	d.init = false
}
