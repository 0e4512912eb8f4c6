// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import (
	"strings"

	"github.com/cosnicolaou/filetype/catalog"
)

// ISOBMFF recognizes an `ftyp` box at offset 4 and dispatches on its
// brand major (the 4 ASCII bytes at offset 8, NUL-stripped and trimmed).
// ok is false when offset 4 isn't `ftyp` or the brand isn't printable
// ASCII, in which case the caller should fall through to the next arm.
func ISOBMFF(sample []byte) (entry catalog.Entry, ok bool) {
	if len(sample) < 12 {
		return catalog.Entry{}, false
	}
	if string(sample[4:8]) != "ftyp" {
		return catalog.Entry{}, false
	}
	if sample[8]&0x60 == 0 {
		return catalog.Entry{}, false
	}
	brand := strings.TrimRight(string(sample[8:12]), "\x00")
	brand = strings.TrimSpace(brand)
	return brandToEntry(brand), true
}

func brandToEntry(brand string) catalog.Entry {
	switch {
	case brand == "avif" || brand == "avis":
		return catalog.Entry{Ext: "avif", MIME: "image/avif"}
	case brand == "mif1":
		return catalog.Entry{Ext: "heic", MIME: "image/heif"}
	case brand == "msf1":
		return catalog.Entry{Ext: "heic", MIME: "image/heif-sequence"}
	case brand == "heic" || brand == "heix":
		return catalog.Entry{Ext: "heic", MIME: "image/heic"}
	case brand == "hevc" || brand == "hevx":
		return catalog.Entry{Ext: "heic", MIME: "image/heic-sequence"}
	case brand == "qt":
		return catalog.Entry{Ext: "mov", MIME: "video/quicktime"}
	case brand == "M4V" || brand == "M4VH" || brand == "M4VP":
		return catalog.Entry{Ext: "m4v", MIME: "video/x-m4v"}
	case brand == "M4P":
		return catalog.Entry{Ext: "m4p", MIME: "video/mp4"}
	case brand == "M4B":
		return catalog.Entry{Ext: "m4b", MIME: "audio/mp4"}
	case brand == "M4A":
		return catalog.Entry{Ext: "m4a", MIME: "audio/x-m4a"}
	case brand == "F4V":
		return catalog.Entry{Ext: "f4v", MIME: "video/mp4"}
	case brand == "F4P":
		return catalog.Entry{Ext: "f4p", MIME: "video/mp4"}
	case brand == "F4A":
		return catalog.Entry{Ext: "f4a", MIME: "audio/mp4"}
	case brand == "F4B":
		return catalog.Entry{Ext: "f4b", MIME: "audio/mp4"}
	case brand == "crx":
		return catalog.Entry{Ext: "cr3", MIME: "image/x-canon-cr3"}
	case strings.HasPrefix(brand, "3g2"):
		return catalog.Entry{Ext: "3g2", MIME: "video/3gpp2"}
	case strings.HasPrefix(brand, "3g"):
		return catalog.Entry{Ext: "3gp", MIME: "video/3gpp"}
	default:
		return catalog.Entry{Ext: "mp4", MIME: "video/mp4"}
	}
}
