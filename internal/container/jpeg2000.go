// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import "github.com/cosnicolaou/filetype/catalog"

// JPEG2000Signature is the 12-byte JP2 family signature box.
var JPEG2000Signature = []byte{0x00, 0x00, 0x00, 0x0C, 'j', 'P', ' ', ' ', 0x0D, 0x0A, 0x87, 0x0A}

// JPEG2000 dispatches the JP2-family signature box on the 4-ascii brand
// that follows the file-type box header, at offset 20 from the start of
// the signature.
func JPEG2000(sample []byte) catalog.Entry {
	const brandOffset = 20
	if len(sample) < brandOffset+4 {
		return catalog.Entry{Ext: "jp2", MIME: "image/jp2"}
	}
	switch string(sample[brandOffset : brandOffset+4]) {
	case "jp2 ":
		return catalog.Entry{Ext: "jp2", MIME: "image/jp2"}
	case "jpx ":
		return catalog.Entry{Ext: "jpx", MIME: "image/jpx"}
	case "jpm ":
		return catalog.Entry{Ext: "jpm", MIME: "image/jpm"}
	case "mjp2":
		return catalog.Entry{Ext: "mj2", MIME: "video/mj2"}
	default:
		return catalog.Entry{Ext: "jp2", MIME: "image/jp2"}
	}
}
