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

// checksum.go prints stdin's Adler-32 and CRC-32/IEEE checksums using this
// module's own checksum package, rather than the standard library's
// hash/adler32 and hash/crc32, so its output can be diffed against what
// package deflate and package png actually embed in their output.
//
// Usage: go run checksum.go < foo.bar

import (
	"fmt"
	"io"
	"os"

	"github.com/imaya/pngenc/checksum"
)

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	var crc checksum.CRC32Digest
	crc.Write(data)
	fmt.Printf("adler32 0x%08X\n", checksum.Adler32(data))
	fmt.Printf("crc32   0x%08X\n", crc.Sum32())
	return nil
}
