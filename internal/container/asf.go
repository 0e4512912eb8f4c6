// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import (
	"encoding/binary"

	"github.com/cosnicolaou/filetype/catalog"
	"github.com/google/uuid"
)

var (
	asfHeaderGUID           = uuid.Must(uuid.FromBytes(leToBE([]byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C})))
	asfStreamPropertiesGUID = uuid.Must(uuid.FromBytes(leToBE([]byte{0xB7, 0xDC, 0x04, 0x91, 0xA5, 0x8B, 0xD0, 0x11, 0xA3, 0x0E, 0x00, 0xA0, 0xC9, 0x03, 0x48, 0xF6})))
	asfAudioGUID            = uuid.Must(uuid.FromBytes(leToBE([]byte{0x40, 0x9E, 0x69, 0xF8, 0x4D, 0x5B, 0xCF, 0x11, 0xA8, 0xFD, 0x00, 0x80, 0x5F, 0x5C, 0x44, 0x2B})))
	asfVideoGUID            = uuid.Must(uuid.FromBytes(leToBE([]byte{0xC0, 0xEF, 0x19, 0xBC, 0x4D, 0x5B, 0xCF, 0x11, 0xA8, 0xFD, 0x00, 0x80, 0x5F, 0x5C, 0x44, 0x2B})))
)

// leToBE reorders a 16-byte ASF GUID (stored little-endian per its first
// three fields, as Microsoft GUIDs are) into the big-endian byte layout
// uuid.FromBytes expects, so the two can be compared as uuid.UUID values
// instead of raw byte slices.
func leToBE(g []byte) []byte {
	return []byte{
		g[3], g[2], g[1], g[0],
		g[5], g[4],
		g[7], g[6],
		g[8], g[9],
		g[10], g[11], g[12], g[13], g[14], g[15],
	}
}

// ASF walks the first ~1KB of ASF header objects looking for a
// Stream-Properties-Object to dispatch audio vs video; it defaults to a
// generic ASF result when no stream properties object is found, or the
// sample is malformed.
func ASF(sample []byte) catalog.Entry {
	generic := catalog.Entry{Ext: "asf", MIME: "video/x-ms-asf"}
	if len(sample) < 16 {
		return catalog.Entry{}
	}
	head, err := uuid.FromBytes(leToBE(sample[:16]))
	if err != nil || head != asfHeaderGUID {
		return catalog.Entry{}
	}
	pos := 30
	limit := len(sample)
	if limit > 1024 {
		limit = 1024
	}
	for pos+24 <= limit {
		guid, err := uuid.FromBytes(leToBE(sample[pos : pos+16]))
		if err != nil {
			break
		}
		size := binary.LittleEndian.Uint64(sample[pos+16 : pos+24])
		if guid == asfStreamPropertiesGUID {
			if pos+24+16 > len(sample) {
				return generic
			}
			typeGUID, err := uuid.FromBytes(leToBE(sample[pos+24 : pos+40]))
			if err != nil {
				return generic
			}
			switch typeGUID {
			case asfAudioGUID:
				return catalog.Entry{Ext: "asf", MIME: "audio/x-ms-asf"}
			case asfVideoGUID:
				return generic
			}
		}
		if size == 0 || size > uint64(len(sample)) {
			break
		}
		pos += int(size)
	}
	return generic
}
