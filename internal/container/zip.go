// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import (
	"archive/zip"
	"io"
	"regexp"
	"strings"

	"github.com/cosnicolaou/filetype/catalog"
	"github.com/cosnicolaou/filetype/internal/mimemap"
)

var dexName = regexp.MustCompile(`^classes.*\.dex$`)

var contentTypesQuoted = regexp.MustCompile(`"([^"]*\.main\+xml)"`)

// ZIP walks a zip.Reader's central directory looking for the
// special-cased filenames the engine recognizes, in the same handler/stop
// shape as the tokenizer-driven unzip collaborator described for
// streaming sources: most entries are skipped without reading their
// body, only the few that matter are inflated.
func ZIP(zr *zip.Reader) catalog.Entry {
	for _, f := range zr.File {
		switch {
		case f.Name == "META-INF/mozilla.rsa":
			return catalog.Entry{Ext: "xpi", MIME: "application/x-xpinstall"}
		case f.Name == "META-INF/MANIFEST.MF":
			return catalog.Entry{Ext: "jar", MIME: "application/java-archive"}
		case f.Name == "mimetype":
			if mime, ok := readZipEntryText(f); ok {
				if e, ok := mimemap.Lookup(strings.TrimSpace(mime)); ok {
					return e
				}
			}
		case f.Name == "[Content_Types].xml":
			if xml, ok := readZipEntryText(f); ok {
				if e, ok := contentTypesEntry(xml); ok {
					return e
				}
			}
		case dexName.MatchString(f.Name):
			return catalog.Entry{Ext: "apk", MIME: "application/vnd.android.package-archive"}
		}
	}
	return catalog.Entry{Ext: "zip", MIME: "application/zip"}
}

func readZipEntryText(f *zip.File) (string, bool) {
	rc, err := f.Open()
	if err != nil {
		return "", false
	}
	defer rc.Close()
	const limit = 4096
	body, err := io.ReadAll(io.LimitReader(rc, limit))
	if err != nil {
		return "", false
	}
	return string(body), true
}

func contentTypesEntry(xml string) (catalog.Entry, bool) {
	matches := contentTypesQuoted.FindAllStringSubmatch(xml, -1)
	if len(matches) > 0 {
		last := matches[len(matches)-1][1]
		if e, ok := mimemap.Lookup(last); ok {
			return e, true
		}
	}
	if e, ok := mimemap.Lookup("application/vnd.ms-package.3dmanufacturing-3dmodel+xml"); ok && strings.Contains(xml, "3dmanufacturing-3dmodel") {
		return e, true
	}
	return catalog.Entry{}, false
}
