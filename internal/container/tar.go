// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import "strconv"

// TARChecksumValid reports whether a 512-byte TAR header block carries a
// checksum consistent with its contents. The stored checksum at offset
// 148 is treated as all spaces (0x20) when computing the sum, per the
// format's own bootstrap rule (the field holds its own checksum).
func TARChecksumValid(block []byte) bool {
	if len(block) < 512 {
		return false
	}
	field := block[148:156]
	end := len(field)
	for i, b := range field {
		if b == 0 {
			end = i
			break
		}
	}
	declared, err := strconv.ParseUint(trimSpace(string(field[:end])), 8, 64)
	if err != nil {
		return false
	}
	sum := 8 * int(' ')
	for i := 0; i < 148; i++ {
		sum += int(block[i])
	}
	for i := 156; i < 512; i++ {
		sum += int(block[i])
	}
	return uint64(sum) == declared
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\x00') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\x00') {
		end--
	}
	return s[start:end]
}

// IsUSTAR reports whether block carries the `ustar` magic at offset 257
// followed by a NUL or space, the classic discriminator for a TAR
// archive once the checksum alone is ambiguous against zero-filled data.
func IsUSTAR(block []byte) bool {
	if len(block) < 263 {
		return false
	}
	if string(block[257:262]) != "ustar" {
		return false
	}
	return block[262] == 0 || block[262] == ' '
}
