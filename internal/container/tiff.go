// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import (
	"encoding/binary"

	"github.com/cosnicolaou/filetype/catalog"
)

// TIFF reads the version at offset 2 and the first IFD offset at offset
// 4 under the byte order implied by the II/MM signature bytes the caller
// has already matched at the start of sample, then dispatches camera-raw
// sub-formats before
// falling back to plain TIFF.
func TIFF(sample []byte, bo binary.ByteOrder) catalog.Entry {
	if len(sample) < 8 {
		return catalog.Entry{}
	}
	version := bo.Uint16(sample[2:4])
	if version != 42 && version != 43 {
		return catalog.Entry{}
	}
	ifdOffset := int(bo.Uint32(sample[4:8]))

	if ifdOffset >= 6 && len(sample) >= 10 && sample[8] == 'C' && sample[9] == 'R' {
		return catalog.Entry{Ext: "cr2", MIME: "image/x-canon-cr2"}
	}
	if ifdOffset >= 8 && len(sample) >= 12 {
		a := bo.Uint16(sample[8:10])
		b := bo.Uint16(sample[10:12])
		if (a == 0x1C && b == 0xFE) || (a == 0x1F && b == 0x0B) {
			return catalog.Entry{Ext: "nef", MIME: "image/x-nikon-nef"}
		}
	}

	if ifdOffset < 0 || ifdOffset+2 > len(sample) {
		return catalog.Entry{Ext: "tif", MIME: "image/tiff"}
	}
	count := int(bo.Uint16(sample[ifdOffset : ifdOffset+2]))
	pos := ifdOffset + 2
	for i := 0; i < count; i++ {
		if pos+12 > len(sample) {
			break
		}
		tag := bo.Uint16(sample[pos : pos+2])
		switch tag {
		case 50341:
			return catalog.Entry{Ext: "arw", MIME: "image/x-sony-arw"}
		case 50706:
			return catalog.Entry{Ext: "dng", MIME: "image/x-adobe-dng"}
		}
		pos += 12
	}
	return catalog.Entry{Ext: "tif", MIME: "image/tiff"}
}
