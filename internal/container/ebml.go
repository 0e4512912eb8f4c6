// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import (
	"strings"

	"github.com/cosnicolaou/filetype/catalog"
)

const ebmlDocTypeID = 0x4282

// EBML decodes the root element following the `1A 45 DF A3` signature,
// scans its children for the DocType element (id 0x4282) and dispatches
// on its value. sample is positioned at the signature's first byte.
func EBML(sample []byte) catalog.Entry {
	pos := 4
	length, n, ok := readVint(sample, pos, true)
	if !ok {
		return catalog.Entry{}
	}
	pos += n
	end := pos + int(length)
	if end > len(sample) {
		end = len(sample)
	}
	for pos+2 <= end {
		id, idLen, ok := readVint(sample, pos, false)
		if !ok {
			break
		}
		pos += idLen
		size, sizeLen, ok := readVint(sample, pos, true)
		if !ok {
			break
		}
		pos += sizeLen
		if pos+int(size) > len(sample) {
			break
		}
		if id == ebmlDocTypeID {
			doctype := strings.TrimRight(string(sample[pos:pos+int(size)]), "\x00")
			switch doctype {
			case "webm":
				return catalog.Entry{Ext: "webm", MIME: "video/webm"}
			case "matroska":
				return catalog.Entry{Ext: "mkv", MIME: "video/x-matroska"}
			default:
				return catalog.Entry{}
			}
		}
		pos += int(size)
	}
	return catalog.Entry{}
}

// readVint decodes an EBML variable-length integer starting at offset.
// The width is the position of the leading 1 bit in the first byte (1
// through 8 bytes). When stripMarker is true the leading bit is masked
// out of the returned value, as required for size fields; element ids
// keep the marker bit, per the format's own encoding rule.
func readVint(sample []byte, offset int, stripMarker bool) (value uint64, width int, ok bool) {
	if offset < 0 || offset >= len(sample) {
		return 0, 0, false
	}
	first := sample[offset]
	if first == 0 {
		return 0, 0, false
	}
	w := 1
	mask := byte(0x80)
	for mask != 0 && first&mask == 0 {
		mask >>= 1
		w++
	}
	if offset+w > len(sample) {
		return 0, 0, false
	}
	b0 := first
	if stripMarker {
		b0 &^= mask
	}
	value = uint64(b0)
	for i := 1; i < w; i++ {
		value = value<<8 | uint64(sample[offset+i])
	}
	return value, w, true
}
