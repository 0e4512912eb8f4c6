// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package confident

import (
	"github.com/cosnicolaou/filetype/catalog"
	"github.com/cosnicolaou/filetype/internal/container"
	"github.com/cosnicolaou/filetype/internal/sig"
	"github.com/cosnicolaou/filetype/internal/token"
)

// battery512 runs the arms that need the sample expanded to 512 bytes:
// the TAR magic/checksum pair and the remaining UTF-16LE BOM variants.
func battery512(s []byte) (catalog.Entry, bool) {
	switch {
	case tarCandidate(s):
		return entry("tar", "application/x-tar"), true
	case sig.Check(s, []byte{0xFF, 0xFE}, 0, nil) && sig.CheckString(s, "<?xml ", 2, token.UTF16LE):
		return entry("xml", "application/xml"), true
	case len(s) > 0x2A && sig.CheckString(s, "SketchUp Model", 0, token.ASCII):
		return entry("skp", "application/vnd.sketchup.skp"), true
	case sig.CheckString(s, "Windows Registry Editor Version 5.00", 0, token.ASCII):
		return entry("reg", "application/x-ms-regedit"), true
	case sig.CheckString(s, "-----BEGIN PGP MESSAGE-----", 0, token.ASCII):
		return entry("pgp", "application/pgp-encrypted"), true
	}
	return catalog.Entry{}, false
}

func tarCandidate(s []byte) bool {
	if len(s) < 512 {
		return false
	}
	if container.IsUSTAR(s) {
		return true
	}
	return container.TARChecksumValid(s)
}
