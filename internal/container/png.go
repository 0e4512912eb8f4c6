// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package container implements the per-format structured probes: small,
// independent state machines over the sample buffer and the tokenizer,
// one per container family, in the spirit of the teacher's own per-concern
// file split (scanner.go for the bzip2 block stream, parallel.go for
// reassembly) rather than a single unified schema — the probe vocabularies
// (ZIP filenames, EBML element ids, TIFF tags, ASF GUIDs, PNG chunk types)
// diverge too much to share one.
package container

import (
	"encoding/binary"

	"github.com/cosnicolaou/filetype/catalog"
)

// PNGSignature is the 8 byte PNG file signature.
var PNGSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// PNG walks the chunk stream following the 8 byte signature looking for
// acTL (animated PNG) before IDAT (static PNG). A negative chunk length
// is malformed input and reports "unknown" rather than failing, per the
// engine's error policy of folding structural surprises into an absent
// result.
func PNG(sample []byte) catalog.Entry {
	pos := len(PNGSignature)
	for pos+8 <= len(sample) {
		length := int32(binary.BigEndian.Uint32(sample[pos : pos+4]))
		if length < 0 {
			return catalog.Entry{}
		}
		typ := string(sample[pos+4 : pos+8])
		switch typ {
		case "acTL":
			return catalog.Entry{Ext: "apng", MIME: "image/apng"}
		case "IDAT":
			return catalog.Entry{Ext: "png", MIME: "image/png"}
		}
		pos += 8 + int(length) + 4 // length, type, data, crc
	}
	// Chunk walk ran off the end of the sample before resolving IDAT vs
	// acTL; a PNG signature with no usable chunk data yet is still a PNG.
	return catalog.Entry{Ext: "png", MIME: "image/png"}
}
