// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import "github.com/cosnicolaou/filetype/catalog"

// RIFF dispatches a `RIFF....XXXX` chunk on the 4-byte form at offset 8.
// ok is false when sample is too short or the signature isn't RIFF.
func RIFF(sample []byte) (entry catalog.Entry, ok bool) {
	if len(sample) < 12 || string(sample[:4]) != "RIFF" {
		return catalog.Entry{}, false
	}
	switch string(sample[8:12]) {
	case "WEBP":
		return catalog.Entry{Ext: "webp", MIME: "image/webp"}, true
	case "AVI ":
		return catalog.Entry{Ext: "avi", MIME: "video/x-msvideo"}, true
	case "WAVE":
		return catalog.Entry{Ext: "wav", MIME: "audio/x-wav"}, true
	case "QLCM":
		return catalog.Entry{Ext: "qcp", MIME: "audio/qcelp"}, true
	default:
		return catalog.Entry{}, false
	}
}
