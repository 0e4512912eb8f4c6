// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sig implements the pure byte-pattern predicates the confident
// and imprecise detectors are built from: masked equality at an offset,
// and encoded-string equality at an offset. These mirror the teacher's
// own magic-number comparisons in scanner.go (blockMagic/eosMagic
// lookups) generalized from a single fixed pattern to the
// pattern+mask+offset shape the detection battery needs, grounded
// equally on gabriel-vasile/mimetype's prefix/offset combinators
// (other_examples/..._magic-archive.go).
package sig

import "github.com/cosnicolaou/filetype/internal/token"

// Check reports whether header matches sample starting at offset. If
// mask is non-nil it must be the same length as header; each header byte
// is compared against sample[offset+i]&mask[i]. Indices outside sample
// (negative, or beyond its end) read as zero rather than panicking, so a
// pattern extending past the sample matches only where its overhanging
// bytes are zero.
func Check(sample []byte, header []byte, offset int, mask []byte) bool {
	for i, want := range header {
		idx := offset + i
		var got byte
		if idx >= 0 && idx < len(sample) {
			got = sample[idx]
		}
		if mask != nil {
			got &= mask[i]
		}
		if got != want {
			return false
		}
	}
	return true
}

// CheckString encodes text under enc and applies Check at offset.
func CheckString(sample []byte, text string, offset int, enc token.Encoding) bool {
	return Check(sample, token.EncodeString(text, enc), offset, nil)
}

// At returns the byte at offset, or 0 if out of range.
func At(sample []byte, offset int) byte {
	if offset < 0 || offset >= len(sample) {
		return 0
	}
	return sample[offset]
}

// HasPrefix reports whether sample starts with any of the given patterns.
func HasPrefix(sample []byte, patterns ...[]byte) bool {
	for _, p := range patterns {
		if Check(sample, p, 0, nil) {
			return true
		}
	}
	return false
}
