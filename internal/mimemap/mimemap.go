// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mimemap is the closed lookup from archive-embedded media-type
// strings (OpenDocument "mimetype" entries, OOXML "[Content_Types].xml"
// part names, 3MF content types) to catalogue entries. It has no
// counterpart in the teacher repo; its shape mirrors the teacher's own
// small closed maps (the huffman canonical-code tables in
// internal/bzip2/huffman.go) generalized from an array indexed by code
// to a map indexed by string.
package mimemap

import "github.com/cosnicolaou/filetype/catalog"

// Lookup maps an embedded media-type string to a catalogue entry. ok is
// false when mime isn't one this package recognizes.
func Lookup(mime string) (catalog.Entry, bool) {
	e, ok := table[mime]
	return e, ok
}

var table = map[string]catalog.Entry{
	// OpenDocument Format, keyed by the literal contents of the ZIP
	// archive's uncompressed "mimetype" entry.
	"application/vnd.oasis.opendocument.text":         {Ext: "odt", MIME: "application/vnd.oasis.opendocument.text"},
	"application/vnd.oasis.opendocument.spreadsheet":  {Ext: "ods", MIME: "application/vnd.oasis.opendocument.spreadsheet"},
	"application/vnd.oasis.opendocument.presentation": {Ext: "odp", MIME: "application/vnd.oasis.opendocument.presentation"},
	"application/epub+zip":                            {Ext: "epub", MIME: "application/epub+zip"},

	// OOXML, keyed by the media-type substring captured from the last
	// `Override PartName=".../..." ContentType="..."` entry in
	// "[Content_Types].xml" whose ContentType ends in ".main+xml".
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml": {
		Ext: "docx", MIME: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml": {
		Ext: "xlsx", MIME: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml": {
		Ext: "pptx", MIME: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	},
	"application/vnd.openxmlformats-officedocument.presentationml.template.main+xml": {
		Ext: "potx", MIME: "application/vnd.openxmlformats-officedocument.presentationml.template",
	},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.template.main+xml": {
		Ext: "xltx", MIME: "application/vnd.openxmlformats-officedocument.spreadsheetml.template",
	},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.template.main+xml": {
		Ext: "dotx", MIME: "application/vnd.openxmlformats-officedocument.wordprocessingml.template",
	},

	// Macro-enabled OOXML templates publish a ".12" suffixed ContentType
	// whose canonical catalogue entry is the plain (macro-free) template;
	// the ".12" distinguishes the on-disk schema version, not the format.
	"application/vnd.ms-word.template.macroEnabled.12.main+xml": {
		Ext: "dotx", MIME: "application/vnd.openxmlformats-officedocument.wordprocessingml.template",
	},
	"application/vnd.ms-excel.template.macroEnabled.12.main+xml": {
		Ext: "xltx", MIME: "application/vnd.openxmlformats-officedocument.spreadsheetml.template",
	},

	// 3MF.
	"application/vnd.ms-package.3dmanufacturing-3dmodel+xml": {Ext: "3mf", MIME: "application/vnd.ms-package.3dmanufacturing-3dmodel+xml"},
}
