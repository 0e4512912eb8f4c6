// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import "github.com/cosnicolaou/filetype/catalog"

// OGG dispatches an `OggS` page on its first codec header: 28 bytes past
// the 4-byte capture pattern and page header fields, the codec identifier
// occupies the next 8 bytes. sample must already be known to start with
// "OggS"; OGG returns the ogx fallback entry when no codec is recognized.
func OGG(sample []byte) catalog.Entry {
	const codecOffset = 4 + 1 + 1 + 8 + 4 + 4 + 4 + 1 + 1
	if len(sample) < codecOffset+8 {
		return ogx()
	}
	codec := sample[codecOffset : codecOffset+8]
	switch {
	case string(codec[:8]) == "OpusHead":
		return catalog.Entry{Ext: "opus", MIME: "audio/opus"}
	case string(codec[:7]) == "theora\x00"[:7] || string(codec[1:7]) == "theora":
		return catalog.Entry{Ext: "ogv", MIME: "video/ogg"}
	case codec[0] == 0x01 && string(codec[1:6]) == "video":
		return catalog.Entry{Ext: "ogv", MIME: "video/ogg"}
	case codec[0] == 0x7F && string(codec[1:5]) == "FLAC":
		return catalog.Entry{Ext: "ogg", MIME: "audio/ogg"}
	case string(codec[:6]) == "Speex ":
		return catalog.Entry{Ext: "ogg", MIME: "audio/ogg"}
	case codec[0] == 0x01 && string(codec[1:7]) == "vorbis":
		return catalog.Entry{Ext: "ogg", MIME: "audio/ogg"}
	default:
		return ogx()
	}
}

func ogx() catalog.Entry {
	return catalog.Entry{Ext: "ogx", MIME: "application/ogg"}
}
