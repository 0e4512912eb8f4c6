// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package confident

import "testing"

func TestBattery256(t *testing.T) {
	s := make([]byte, 256)
	copy(s[36:], []byte{0x61, 0x63, 0x73, 0x70}) // ICC profile marker at offset 36
	e, ok := battery256(s)
	if !ok || e.Ext != "icc" {
		t.Fatalf("battery256(icc) = %+v, %v, want icc", e, ok)
	}
}

func TestBattery512TarUSTAR(t *testing.T) {
	s := make([]byte, 512)
	copy(s[257:], "ustar\x0000")
	e, ok := battery512(s)
	if !ok || e.Ext != "tar" {
		t.Fatalf("battery512(ustar) = %+v, %v, want tar", e, ok)
	}
}

func TestBattery512PGP(t *testing.T) {
	s := make([]byte, 512)
	copy(s, "-----BEGIN PGP MESSAGE-----")
	e, ok := battery512(s)
	if !ok || e.Ext != "pgp" {
		t.Fatalf("battery512(pgp) = %+v, %v, want pgp", e, ok)
	}
}

func TestBattery512NoMatch(t *testing.T) {
	s := make([]byte, 512)
	if _, ok := battery512(s); ok {
		t.Errorf("battery512(zeros) ok = true, want false")
	}
}
