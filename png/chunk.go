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

import "github.com/imaya/pngenc/checksum"

// signature is the 8-byte PNG file signature (PNG specification section
// 5.2): a non-ASCII byte, "PNG", a CRLF, a control-Z, and a line feed,
// chosen so naive text-mode transfers corrupt detectably.
var signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// writeChunk appends one length-prefixed, CRC-protected chunk to buf and
// returns the grown slice, matching the teacher's single growing
// []byte-buffer idiom rather than a per-chunk io.Writer.
func writeChunk(buf []byte, typ [4]byte, data []byte) []byte {
	n := len(data)
	buf = append(buf,
		byte(n>>24), byte(n>>16), byte(n>>8), byte(n),
	)
	buf = append(buf, typ[:]...)
	buf = append(buf, data...)

	var d checksum.CRC32Digest
	d.Write(typ[:])
	d.Write(data)
	crc := d.Sum32()
	buf = append(buf, byte(crc>>24), byte(crc>>16), byte(crc>>8), byte(crc))
	return buf
}
