// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"testing"
)

func TestISOBMFF(t *testing.T) {
	for _, tc := range []struct {
		brand string
		ext   string
	}{
		{"avif", "avif"}, {"mif1", "heic"}, {"M4A\x00", "m4a"},
		{"F4V\x00", "f4v"}, {"F4P\x00", "f4p"}, {"F4A\x00", "f4a"}, {"F4B\x00", "f4b"},
		{"3gp5", "3gp"}, {"3g2a", "3g2"}, {"qt  ", "mov"}, {"isom", "mp4"},
	} {
		t.Run(tc.brand, func(t *testing.T) {
			sample := append([]byte{0, 0, 0, 0x18, 'f', 't', 'y', 'p'}, []byte(tc.brand)...)
			e, ok := ISOBMFF(sample)
			if !ok {
				t.Fatalf("ISOBMFF() ok = false")
			}
			if e.Ext != tc.ext {
				t.Errorf("ISOBMFF(%q).Ext = %q, want %q", tc.brand, e.Ext, tc.ext)
			}
		})
	}
	if _, ok := ISOBMFF([]byte{0, 0, 0, 0}); ok {
		t.Errorf("ISOBMFF(short) ok = true, want false")
	}
}

func TestOGG(t *testing.T) {
	header := func(codec string) []byte {
		const codecOffset = 4 + 1 + 1 + 8 + 4 + 4 + 4 + 1 + 1
		b := make([]byte, codecOffset+8)
		copy(b[codecOffset:], codec)
		return b
	}
	if e := OGG(header("OpusHead")); e.Ext != "opus" {
		t.Errorf("OGG(OpusHead).Ext = %q, want opus", e.Ext)
	}
	if e := OGG(header("\x01vorbis\x00")); e.Ext != "ogg" {
		t.Errorf("OGG(vorbis).Ext = %q, want ogg", e.Ext)
	}
	if e := OGG([]byte{}); e.Ext != "ogx" {
		t.Errorf("OGG(empty).Ext = %q, want ogx", e.Ext)
	}
}

func TestEBML(t *testing.T) {
	// The sample starts at byte 0 of the 0x1A45DFA3 signature, followed by
	// a one-byte root size; body: one child element with id 0x4282
	// (DocType) and string value "webm".
	body := []byte{0x42, 0x82, 0x84, 'w', 'e', 'b', 'm'}
	sample := append([]byte{0x1A, 0x45, 0xDF, 0xA3, 0x80 | byte(len(body))}, body...)
	if e := EBML(sample); e.Ext != "webm" {
		t.Errorf("EBML(webm).Ext = %q, want webm", e.Ext)
	}

	body2 := []byte{0x42, 0x82, 0x88, 'm', 'a', 't', 'r', 'o', 's', 'k', 'a'}
	sample2 := append([]byte{0x1A, 0x45, 0xDF, 0xA3, 0x80 | byte(len(body2))}, body2...)
	if e := EBML(sample2); e.Ext != "mkv" {
		t.Errorf("EBML(matroska).Ext = %q, want mkv", e.Ext)
	}
}

func TestTIFF(t *testing.T) {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint16(le[2:4], 42)
	binary.LittleEndian.PutUint32(le[4:8], 8)
	// IFD at offset 8, zero entries.
	le = append(le, 0, 0)
	if e := TIFF(le, binary.LittleEndian); e.Ext != "tif" {
		t.Errorf("TIFF(plain).Ext = %q, want tif", e.Ext)
	}

	cr2 := make([]byte, 10)
	binary.LittleEndian.PutUint16(cr2[2:4], 42)
	binary.LittleEndian.PutUint32(cr2[4:8], 16)
	cr2[8], cr2[9] = 'C', 'R'
	if e := TIFF(cr2, binary.LittleEndian); e.Ext != "cr2" {
		t.Errorf("TIFF(cr2).Ext = %q, want cr2", e.Ext)
	}
}

func TestASF(t *testing.T) {
	header := append([]byte{}, asfHeaderGUIDBytesForTest()...)
	header = append(header, make([]byte, 30-16)...)
	// One header object: stream-properties GUID, size covering the
	// 24-byte object header plus a 16-byte type GUID.
	header = append(header, asfStreamPropertiesGUIDBytesForTest()...)
	size := make([]byte, 8)
	binary.LittleEndian.PutUint64(size, 40)
	header = append(header, size...)
	header = append(header, asfAudioGUIDBytesForTest()...)

	e := ASF(header)
	if e.MIME != "audio/x-ms-asf" {
		t.Errorf("ASF(audio).MIME = %q, want audio/x-ms-asf", e.MIME)
	}
}

func asfHeaderGUIDBytesForTest() []byte {
	return []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C}
}
func asfStreamPropertiesGUIDBytesForTest() []byte {
	return []byte{0xB7, 0xDC, 0x04, 0x91, 0xA5, 0x8B, 0xD0, 0x11, 0xA3, 0x0E, 0x00, 0xA0, 0xC9, 0x03, 0x48, 0xF6}
}
func asfAudioGUIDBytesForTest() []byte {
	return []byte{0x40, 0x9E, 0x69, 0xF8, 0x4D, 0x5B, 0xCF, 0x11, 0xA8, 0xFD, 0x00, 0x80, 0x5F, 0x5C, 0x44, 0x2B}
}

func TestRIFF(t *testing.T) {
	for _, tc := range []struct{ form, ext string }{
		{"WEBP", "webp"}, {"AVI ", "avi"}, {"WAVE", "wav"}, {"QLCM", "qcp"},
	} {
		sample := append([]byte("RIFF\x00\x00\x00\x00"), []byte(tc.form)...)
		e, ok := RIFF(sample)
		if !ok || e.Ext != tc.ext {
			t.Errorf("RIFF(%s) = %+v, %v, want ext %q", tc.form, e, ok, tc.ext)
		}
	}
	if _, ok := RIFF([]byte("not riff")); ok {
		t.Errorf("RIFF(non-riff) ok = true, want false")
	}
}

func TestJPEG2000(t *testing.T) {
	sample := make([]byte, 24)
	copy(sample[20:], "jpx ")
	if e := JPEG2000(sample); e.Ext != "jpx" {
		t.Errorf("JPEG2000(jpx).Ext = %q, want jpx", e.Ext)
	}
	if e := JPEG2000(make([]byte, 4)); e.Ext != "jp2" {
		t.Errorf("JPEG2000(short).Ext = %q, want jp2", e.Ext)
	}
}

func TestTARChecksum(t *testing.T) {
	block := make([]byte, 512)
	copy(block, "file.txt")
	copy(block[257:], "ustar\x0000")
	sum := 8 * int(' ')
	for i := 0; i < 148; i++ {
		sum += int(block[i])
	}
	for i := 156; i < 512; i++ {
		sum += int(block[i])
	}
	checksum := []byte{
		byte('0' + (sum>>18)&7), byte('0' + (sum>>15)&7), byte('0' + (sum>>12)&7),
		byte('0' + (sum>>9)&7), byte('0' + (sum>>6)&7), byte('0' + (sum>>3)&7), byte('0' + sum&7),
	}
	copy(block[148:], checksum)
	block[155] = 0

	if !TARChecksumValid(block) {
		t.Errorf("TARChecksumValid() = false, want true")
	}
	if !IsUSTAR(block) {
		t.Errorf("IsUSTAR() = false, want true")
	}
	block[0] ^= 0xFF
	if TARChecksumValid(block) {
		t.Errorf("TARChecksumValid(mutated) = true, want false")
	}
}

func TestZIP(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("mimetype")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("application/epub+zip")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	e := ZIP(zr)
	if e.Ext != "epub" {
		t.Errorf("ZIP(mimetype=epub).Ext = %q, want epub", e.Ext)
	}
}

func TestZIPDefault(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("readme.txt"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	if e := ZIP(zr); e.Ext != "zip" {
		t.Errorf("ZIP(plain).Ext = %q, want zip", e.Ext)
	}
}
