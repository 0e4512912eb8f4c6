// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package imprecise implements the fallback detector: ambiguous short
// signatures and the tolerant MPEG audio frame-sync scan, tried only
// after the confident battery gives up. It mirrors the teacher's own
// separation of a strict decode path from a permissive one (the
// multistream handling in the teacher's reader.go, which keeps scanning
// past a first bzip2 member rather than stopping at the first
// ambiguity) generalized to "keep trying less certain signatures."
package imprecise

import (
	"github.com/cosnicolaou/filetype/catalog"
	"github.com/cosnicolaou/filetype/internal/sig"
	"github.com/cosnicolaou/filetype/internal/token"
)

// Detect runs the imprecise battery against r: raw MPEG-PS/TTF/ICO/CUR
// signatures, then an MPEG audio frame-sync scan tolerant of up to
// mpegOffsetTolerance bytes of leading garbage.
func Detect(r *token.Reader, mpegOffsetTolerance uint) (catalog.Entry, bool, error) {
	n := 2 + int(mpegOffsetTolerance)
	if n < 8 {
		n = 8
	}
	sample, err := r.Peek(n, true)
	if err != nil {
		return catalog.Entry{}, false, err
	}
	switch {
	case sig.Check(sample, []byte{0x00, 0x00, 0x01, 0xBA}, 0, nil),
		sig.Check(sample, []byte{0x00, 0x00, 0x01, 0xB3}, 0, nil):
		return catalog.Entry{Ext: "mpg", MIME: "video/mpeg"}, true, nil
	case sig.Check(sample, []byte{0x00, 0x01, 0x00, 0x00, 0x00}, 0, nil):
		return catalog.Entry{Ext: "ttf", MIME: "font/ttf"}, true, nil
	case sig.Check(sample, []byte{0x00, 0x00, 0x01, 0x00}, 0, nil):
		return catalog.Entry{Ext: "ico", MIME: "image/x-icon"}, true, nil
	case sig.Check(sample, []byte{0x00, 0x00, 0x02, 0x00}, 0, nil):
		return catalog.Entry{Ext: "cur", MIME: "image/x-icon"}, true, nil
	}

	for depth := 0; depth <= int(mpegOffsetTolerance); depth++ {
		if e, ok := mpegAudioFrame(sample, depth); ok {
			return e, true, nil
		}
	}
	return catalog.Entry{}, false, nil
}

// mpegAudioFrame tests for the 11 bit MPEG audio sync word at offset and
// classifies the frame by its version/layer sub-bits.
func mpegAudioFrame(sample []byte, offset int) (catalog.Entry, bool) {
	if offset+2 > len(sample) {
		return catalog.Entry{}, false
	}
	if sample[offset] != 0xFF || sample[offset+1]&0xE0 != 0xE0 {
		return catalog.Entry{}, false
	}
	b1 := sample[offset+1]
	switch {
	case b1&0x16 == 0x10:
		return catalog.Entry{Ext: "aac", MIME: "audio/aac"}, true
	case b1&0x06 == 0x02:
		return catalog.Entry{Ext: "mp3", MIME: "audio/mpeg"}, true
	case b1&0x06 == 0x04:
		return catalog.Entry{Ext: "mp2", MIME: "audio/mpeg"}, true
	case b1&0x06 == 0x06:
		return catalog.Entry{Ext: "mp1", MIME: "audio/mpeg"}, true
	}
	return catalog.Entry{}, false
}
