// +build ignore

package main

import (
	"log"
	"os"
	"path/filepath"
)

// fixture is one row of the catalogue's minimum signature-bearing prefix.
// Bytes are trimmed to whatever the confident/imprecise batteries actually
// inspect; anything past the signature is padding, not real format content.
type fixture struct {
	ext  string
	data []byte
}

func pad(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

func main() {
	outDir := "testdata"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0770); err != nil {
		log.Fatalf("mkdir %v: %v", outDir, err)
	}

	for _, tc := range []fixture{
		{"bmp", []byte{0x42, 0x4D, 0, 0, 0, 0}},
		{"gif", []byte("GIF89a")},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}},
		{"jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0}},
		{"jls", []byte{0xFF, 0xD8, 0xFF, 0xF7}},
		{"flif", []byte("FLIF")},
		{"8bps", []byte("8BPS")},
		{"aif", []byte("FORM\x00\x00\x00\x00AIFF")},
		{"icns", []byte("icns")},
		{"mthd", []byte("MThd")},
		{"wasm", []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}},
		{"flac", []byte("fLaC")},
		{"bpg", []byte{0x42, 0x50, 0x47, 0xFB}},
		{"wv", []byte("wvpk")},
		{"pdf", []byte("%PDF-1.4")},
		{"tif_le", []byte{0x49, 0x49, 0x2A, 0x00}},
		{"tif_be", []byte{0x4D, 0x4D, 0x00, 0x2A}},
		{"ape", []byte("MAC \x00\x00\x00\x00")},
		{"sqlite", []byte("SQLite format 3\x00")},
		{"nes", []byte{0x4E, 0x45, 0x53, 0x1A}},
		{"cr24", []byte("Cr24")},
		{"mscf", []byte("MSCF\x00\x00\x00\x00")},
		{"rpm", []byte{0xED, 0xAB, 0xEE, 0xDB}},
		{"zst", []byte{0x28, 0xB5, 0x2F, 0xFD}},
		{"elf", []byte{0x7F, 'E', 'L', 'F'}},
		{"pst", []byte{0x21, 0x42, 0x44, 0x4E}},
		{"par1", []byte("PAR1")},
		{"ttcf", []byte("ttcf")},
		{"macho", []byte{0xCF, 0xFA, 0xED, 0xFE}},
		{"lz4", []byte{0x04, 0x22, 0x4D, 0x18}},
		{"regf", []byte("regf")},
		{"gz", []byte{0x1F, 0x8B, 0x08}},
		{"bz2", []byte("BZh9")},
		{"7z", []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}},
		{"rar", []byte("Rar!\x1A\x07\x00")},
		{"zip", pad([]byte{0x50, 0x4B, 0x03, 0x04}, 32)},
		{"class", []byte{0xCA, 0xFE, 0xBA, 0xBE}},
		{"swf", []byte("FWS\x06")},
		{"cab", []byte("MSCF\x00\x00\x00\x00")},
		{"dmg", []byte{0x78, 0x01, 0x73, 0x0D}},
		{"blend", []byte("BLENDER")},
		{"webvtt", []byte("WEBVTT\n")},
		{"arj", []byte{0x60, 0xEA}},
		{"exe", []byte("MZ")},
		{"deb", pad(append([]byte("!<arch>\n"), []byte("debian-binary")...), 21)},
		{"ar", pad(append([]byte("!<arch>\n"), []byte("not-debian    ")...), 21)},
		{"lzip", []byte("LZIP")},
		{"dsd", []byte("DSD \x00\x00\x00\x00")},
		{"png_ihdr", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13, 'I', 'H', 'D', 'R'}},
		{"ogg_opus", append([]byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x01\x13\x00\x00\x00"), []byte("OpusHead")...)},
		{"ftyp_isom", append([]byte{0, 0, 0, 24, 'f', 't', 'y', 'p'}, []byte("isom")...)},
		{"riff_webp", append([]byte("RIFF\x00\x00\x00\x00"), []byte("WEBP")...)},
		{"riff_avi", append([]byte("RIFF\x00\x00\x00\x00"), []byte("AVI ")...)},
		{"riff_wave", append([]byte("RIFF\x00\x00\x00\x00"), []byte("WAVE")...)},
		{"ebml_webm", nil}, // not generated here: nil entries are skipped below
		{"asf", nil},       // not generated here: nil entries are skipped below
		{"ico", []byte{0, 0, 1, 0}},
		{"cur", []byte{0, 0, 2, 0}},
		{"ttf", []byte{0, 1, 0, 0}},
		{"mpeg_ps", []byte{0, 0, 1, 0xBA}},
		{"mp3_frame", []byte{0xFF, 0xFB, 0x90, 0x00}},
		{"id3_lenient", append([]byte{'I', 'D', '3', 0, 0, 0, 0, 0, 0, 0, 0, 0, 8}, make([]byte, 8)...)},
		{"tar_ustar", pad([]byte("ustar\x0000"), 512)}, // caller must place at offset 257
	} {
		if tc.data == nil {
			continue
		}
		path := filepath.Join(outDir, tc.ext)
		if err := os.WriteFile(path, tc.data, 0660); err != nil {
			log.Fatalf("write %v: %v", path, err)
		}
	}
	log.Printf("wrote fixtures to %v", outDir)
}
