// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package confident

import (
	"encoding/binary"
	"encoding/json"

	"github.com/cosnicolaou/filetype/catalog"
	"github.com/cosnicolaou/filetype/internal/sig"
	"github.com/cosnicolaou/filetype/internal/token"
)

// battery256 runs the arms that need the sample expanded to 256 bytes.
func battery256(s []byte) (catalog.Entry, bool) {
	switch {
	case len(s) > 40 && sig.CheckString(s, "acsp", 36, token.ASCII):
		return entry("icc", "application/vnd.iccprofile"), true
	case len(s) > 19 && (sig.CheckString(s, "**ACE**", 7, token.ASCII) || sig.CheckString(s, "**ACE**", 12, token.ASCII)):
		return entry("ace", "application/x-ace-compressed"), true
	case sig.CheckString(s, "BEGIN:VCARD", 0, token.ASCII):
		return entry("vcf", "text/vcard"), true
	case sig.CheckString(s, "VCALENDAR", 6, token.ASCII):
		return entry("vcf", "text/vcard"), true
	case sig.CheckString(s, "FUJIFILMCCD-RAW", 0, token.ASCII):
		return entry("raf", "image/x-fujifilm-raf"), true
	case sig.CheckString(s, "Extended Module:", 0, token.ASCII):
		return entry("xm", "audio/x-xm"), true
	case sig.Check(s, []byte{0x43, 0x72, 0x65, 0x61, 0x74, 0x69, 0x76, 0x65, 0x20, 0x56, 0x6F, 0x69, 0x63, 0x65, 0x20, 0x46, 0x69, 0x6C, 0x65}, 0, nil):
		return entry("voc", "audio/x-voc"), true
	case asarCandidate(s):
		return entry("asar", "application/x-asar"), true
	case len(s) > 14 && sig.Check(s, []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x02}, 0, nil):
		return entry("mxf", "application/mxf"), true
	case len(s) > 47 && sig.CheckString(s, "SCRM", 44, token.ASCII):
		return entry("s3m", "audio/x-s3m"), true
	case rawMPEGTS(s):
		return entry("ts", "video/mp2t"), true
	case bdavMPEGTS(s):
		return entry("m2ts", "video/mp2t"), true
	case len(s) > 67 && sig.CheckString(s, "BOOKMOBI", 60, token.ASCII):
		return entry("mobi", "application/x-mobipocket-ebook"), true
	case len(s) > 131 && sig.CheckString(s, "DICM", 128, token.ASCII):
		return entry("dcm", "application/dicom"), true
	case sig.Check(s, []byte{0x4C, 0x00, 0x00, 0x00, 0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}, 0, nil):
		return entry("lnk", "application/x.ms.shortcut"), true
	case sig.Check(s, []byte{0x62, 0x6F, 0x6F, 0x6B, 0x00, 0x00, 0x00, 0x00, 0x6D, 0x61, 0x72, 0x6B, 0x00, 0x00, 0x00, 0x00}, 0, nil):
		return entry("alias", "application/x.apple.alias"), true
	case sig.Check(s, []byte{0x43, 0x42, 0x46, 0x41}, 0, nil):
		return entry("fbx", "application/x-fbx"), true
	case len(s) > 36 && sig.Check(s, []byte{0x4C, 0x50}, 34, nil) && sig.Check(s, []byte{0x00, 0x00, 0x01, 0x00}, 8, nil):
		return entry("eot", "application/vnd.ms-fontobject"), true
	case sig.Check(s, []byte{0x06, 0x06, 0xED, 0xF5, 0xD8, 0x1D, 0x46, 0xE5, 0xBD, 0x31, 0xEF, 0xE7, 0xFE, 0x74, 0xB7, 0x1D}, 0, nil):
		return entry("indd", "application/x-indesign"), true
	}
	return catalog.Entry{}, false
}

func rawMPEGTS(s []byte) bool {
	return len(s) > 188 && s[0] == 0x47 && s[188] == 0x47
}

func bdavMPEGTS(s []byte) bool {
	return len(s) > 196 && s[4] == 0x47 && s[196] == 0x47
}

// asarCandidate matches Electron's ASAR container: a 4 byte pickle
// header followed by a little-endian JSON header length, then a JSON
// document carrying a top-level "files" field.
func asarCandidate(s []byte) bool {
	if !sig.Check(s, []byte{0x04, 0x00, 0x00, 0x00}, 0, nil) || len(s) < 16 {
		return false
	}
	jsonLen := int(binary.LittleEndian.Uint32(s[12:16]))
	if jsonLen <= 0 || 16+jsonLen > len(s) {
		return false
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(s[16:16+jsonLen], &doc); err != nil {
		return false
	}
	_, ok := doc["files"]
	return ok
}
