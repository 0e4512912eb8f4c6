// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package imprecise

import (
	"bytes"
	"testing"

	"github.com/cosnicolaou/filetype/internal/token"
)

func reader(data []byte) *token.Reader {
	return token.NewReader(nil, bytes.NewReader(data), int64(len(data)))
}

func TestDetectRawSignatures(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
		ext  string
	}{
		{"mpeg-ps", []byte{0x00, 0x00, 0x01, 0xBA, 0, 0, 0, 0}, "mpg"},
		{"ttf", []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0, 0, 0}, "ttf"},
		{"ico", []byte{0x00, 0x00, 0x01, 0x00, 0, 0, 0, 0}, "ico"},
		{"cur", []byte{0x00, 0x00, 0x02, 0x00, 0, 0, 0, 0}, "cur"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, ok, err := Detect(reader(tc.data), 0)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if !ok || e.Ext != tc.ext {
				t.Fatalf("Detect() = %+v, %v, want ext %q", e, ok, tc.ext)
			}
		})
	}
}

func TestDetectMPEGAudioFrame(t *testing.T) {
	e, ok, err := Detect(reader([]byte{0xFF, 0xFB, 0x90, 0x00}), 0)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if !ok || e.Ext != "mp3" {
		t.Fatalf("Detect() = %+v, %v, want mp3", e, ok)
	}
}

func TestDetectMPEGAudioFrameWithTolerance(t *testing.T) {
	data := append([]byte{0x00, 0x00}, 0xFF, 0xFB, 0x90, 0x00)
	e, ok, err := Detect(reader(data), 2)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if !ok || e.Ext != "mp3" {
		t.Fatalf("Detect() = %+v, %v, want mp3", e, ok)
	}
}

func TestDetectNoMatch(t *testing.T) {
	_, ok, err := Detect(reader([]byte("plain text")), 0)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if ok {
		t.Errorf("Detect() ok = true, want false")
	}
}
