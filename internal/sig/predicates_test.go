// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sig

import (
	"testing"

	"github.com/cosnicolaou/filetype/internal/token"
)

func TestCheck(t *testing.T) {
	for _, tc := range []struct {
		name   string
		sample []byte
		header []byte
		offset int
		mask   []byte
		want   bool
	}{
		{"exact match", []byte{0x89, 'P', 'N', 'G'}, []byte{0x89, 'P', 'N', 'G'}, 0, nil, true},
		{"mismatch", []byte{0x89, 'P', 'N', 'G'}, []byte{0x89, 'P', 'N', 'X'}, 0, nil, false},
		{"offset match", []byte{0, 0, 0x89, 'P'}, []byte{0x89, 'P'}, 2, nil, true},
		{"runs past end", []byte{0x89, 'P'}, []byte{0x89, 'P', 'N', 'G'}, 0, nil, false},
		{"masked match", []byte{0xFF}, []byte{0x0F}, 0, []byte{0x0F}, true},
		{"negative offset bytes read as zero", []byte{0x00, 0x01}, []byte{0x00, 0x00, 0x01}, -1, nil, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Check(tc.sample, tc.header, tc.offset, tc.mask); got != tc.want {
				t.Errorf("Check() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheckString(t *testing.T) {
	sample := append([]byte("RIFF"), 0, 0, 0, 0)
	if !CheckString(sample, "RIFF", 0, token.ASCII) {
		t.Errorf("expected ASCII match")
	}
	if CheckString(sample, "riff", 0, token.ASCII) {
		t.Errorf("expected case-sensitive mismatch")
	}

	utf16 := token.EncodeString("PK", token.UTF16LE)
	if !CheckString(utf16, "PK", 0, token.UTF16LE) {
		t.Errorf("expected UTF16LE match")
	}
}

func TestAt(t *testing.T) {
	sample := []byte{1, 2, 3}
	if got := At(sample, 1); got != 2 {
		t.Errorf("At(1) = %d, want 2", got)
	}
	if got := At(sample, 10); got != 0 {
		t.Errorf("At(10) = %d, want 0", got)
	}
	if got := At(sample, -1); got != 0 {
		t.Errorf("At(-1) = %d, want 0", got)
	}
}

func TestHasPrefix(t *testing.T) {
	sample := []byte{0x1F, 0x8B, 0x08}
	if !HasPrefix(sample, []byte{0x50, 0x4B}, []byte{0x1F, 0x8B}) {
		t.Errorf("expected second pattern to match")
	}
	if HasPrefix(sample, []byte{0x50, 0x4B}) {
		t.Errorf("expected no match")
	}
}
