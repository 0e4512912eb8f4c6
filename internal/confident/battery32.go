// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package confident

import (
	"archive/zip"
	"context"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cosnicolaou/filetype/catalog"
	"github.com/cosnicolaou/filetype/internal/container"
	"github.com/cosnicolaou/filetype/internal/sig"
	"github.com/cosnicolaou/filetype/internal/token"
)

// battery32 runs every arm that needs no more than a 32 byte prefix: the
// 2 through 12 byte tiers of the ordered battery, in the order the
// format's own ambiguity resolution demands (e.g. JPEG-LS is tested as a
// nested case of the generic JPEG prefix, not before it).
func battery32(ctx context.Context, r *token.Reader, s []byte, opts Options) (catalog.Entry, bool, bool, error) {
	// 2-byte arms.
	switch {
	case sig.Check(s, []byte{0x42, 0x4D}, 0, nil):
		return entry("bmp", "image/bmp"), true, false, nil
	case sig.Check(s, []byte{0x0B, 0x77}, 0, nil):
		return entry("ac3", "audio/vnd.dolby.dd-raw"), true, false, nil
	case sig.Check(s, []byte{0x78, 0x01}, 0, nil):
		return entry("dmg", "application/x-apple-diskimage"), true, false, nil
	case sig.Check(s, []byte{0x4D, 0x5A}, 0, nil):
		return entry("exe", "application/x-msdownload"), true, false, nil
	case sig.Check(s, []byte{0x25, 0x21}, 0, nil):
		if sig.CheckString(s, "PS-Adobe-", 2, token.ASCII) && bytesContain(s, "EPSF-") {
			return entry("eps", "application/eps"), true, false, nil
		}
		return entry("ps", "application/postscript"), true, false, nil
	case sig.Check(s, []byte{0x1F, 0xA0}, 0, nil), sig.Check(s, []byte{0x1F, 0x9D}, 0, nil):
		return entry("z", "application/x-compress"), true, false, nil
	case sig.Check(s, []byte{0xC7, 0x71}, 0, nil):
		return entry("cpio", "application/x-cpio"), true, false, nil
	case sig.Check(s, []byte{0x60, 0xEA}, 0, nil):
		return entry("arj", "application/x-arj"), true, false, nil
	}

	// 3-byte arms.
	switch {
	case sig.Check(s, []byte{0xEF, 0xBB, 0xBF}, 0, nil):
		if err := r.Skip(3); err != nil {
			return catalog.Entry{}, false, false, err
		}
		e, ok, _, err := Detect(ctx, r, opts)
		return e, ok, true, err
	case sig.Check(s, []byte{0x47, 0x49, 0x46}, 0, nil):
		return entry("gif", "image/gif"), true, false, nil
	case sig.Check(s, []byte{0x49, 0x49, 0xBC}, 0, nil):
		return entry("jxr", "image/jxr"), true, false, nil
	case sig.Check(s, []byte{0x1F, 0x8B, 0x08}, 0, nil):
		e, _, err := gunzipAndDetectTar(ctx, r.Raw(), opts)
		return e, true, true, err
	case sig.Check(s, []byte{0x42, 0x5A, 0x68}, 0, nil):
		return entry("bz2", "application/x-bzip2"), true, false, nil
	case sig.CheckString(s, "ID3", 0, token.ASCII):
		return id3Arm(ctx, r, opts)
	case sig.CheckString(s, "MP+", 0, token.ASCII):
		return entry("mpc", "audio/musepack"), true, false, nil
	case (s[0] == 0x43 || s[0] == 0x46) && len(s) > 2 && s[1] == 0x57 && s[2] == 0x53:
		return entry("swf", "application/x-shockwave-flash"), true, false, nil
	}

	// 4-byte arms.
	if len(s) >= 4 {
		if e, ok := battery4(r, s); ok {
			return e, true, false, nil
		}
	}

	// 5-byte arms.
	if len(s) >= 5 {
		if e, ok := battery5(s); ok {
			return e, true, false, nil
		}
	}

	// 6-byte arms.
	if len(s) >= 6 {
		if e, ok := battery6(s); ok {
			return e, true, false, nil
		}
	}

	// 7-byte arms.
	if len(s) >= 7 {
		if e, ok := battery7(s); ok {
			return e, true, false, nil
		}
	}

	// 8-byte arms.
	if len(s) >= 8 {
		if e, ok := battery8(s); ok {
			return e, true, false, nil
		}
	}

	// 9-byte arms.
	if len(s) >= 9 {
		if e, ok := battery9(s); ok {
			return e, true, false, nil
		}
	}

	// 10-byte arms.
	if len(s) >= 10 && sig.CheckString(s, "REGEDIT4\r\n", 0, token.ASCII) {
		return entry("reg", "application/x-ms-regedit"), true, false, nil
	}

	// 12-byte arms.
	if len(s) >= 12 {
		if e, ok := battery12(r, s); ok {
			return e, true, false, nil
		}
	}

	return catalog.Entry{}, false, false, nil
}

// zipDetect walks the full central directory when the source supports
// random access, falling back to the plain "zip" entry for streaming
// sources that can't be re-read from the start.
func zipDetect(r *token.Reader) catalog.Entry {
	ra, size, ok := r.ReaderAt()
	if !ok {
		return entry("zip", "application/zip")
	}
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return entry("zip", "application/zip")
	}
	return container.ZIP(zr)
}

func entry(ext, mime string) catalog.Entry { return catalog.Entry{Ext: ext, MIME: mime} }

func bytesContain(s []byte, sub string) bool {
	return strings.Contains(string(s), sub)
}

// id3Arm reads the ID3v2 header's 6 ignored bytes and sync-safe length.
// If the declared block runs to or past the end of the source the lenient
// fallback (mp3) applies; otherwise the block is skipped and the engine
// recurses into the full pipeline so user detectors see the underlying
// stream, per the nested-recursion contract.
func id3Arm(ctx context.Context, r *token.Reader, opts Options) (catalog.Entry, bool, bool, error) {
	if err := r.Skip(3); err != nil {
		return catalog.Entry{}, false, false, err
	}
	if err := r.Skip(6); err != nil {
		return catalog.Entry{}, false, false, err
	}
	length, err := r.ReadID3SyncSafeUint32()
	if err != nil {
		return catalog.Entry{}, false, false, err
	}
	total := r.Size()
	if total != token.Unknown && r.Position()+int64(length) >= total {
		return entry("mp3", "audio/mpeg"), true, false, nil
	}
	if err := r.Skip(int(length)); err != nil {
		return entry("mp3", "audio/mpeg"), true, false, nil
	}
	if opts.Nested == nil {
		return catalog.Entry{}, false, true, nil
	}
	e, ok, nerr := opts.Nested(ctx, r)
	return e, ok, true, nerr
}

func battery4(r *token.Reader, s []byte) (catalog.Entry, bool) {
	switch {
	case sig.Check(s, []byte{0xFF, 0xD8, 0xFF}, 0, nil):
		if s[3] == 0xF7 {
			return entry("jls", "image/jls"), true
		}
		return entry("jpg", "image/jpeg"), true
	case sig.CheckString(s, "OTTO", 0, token.ASCII):
		return entry("otf", "font/otf"), true
	case sig.CheckString(s, "FLIF", 0, token.ASCII):
		return entry("flif", "image/flif"), true
	case sig.CheckString(s, "8BPS", 0, token.ASCII):
		return entry("psd", "image/vnd.adobe.photoshop"), true
	case sig.CheckString(s, "MPCK", 0, token.ASCII):
		return entry("mpc", "audio/musepack"), true
	case sig.CheckString(s, "FORM", 0, token.ASCII):
		return entry("aif", "audio/x-aiff"), true
	case sig.Check(s, []byte{0x69, 0x63, 0x6E, 0x73}, 0, nil):
		return entry("icns", "image/icns"), true
	case sig.Check(s, []byte{'P', 'K', 0x03, 0x04}, 0, nil):
		return zipDetect(r), true
	case sig.CheckString(s, "OggS", 0, token.ASCII):
		return container.OGG(s), true
	case sig.CheckString(s, "MThd", 0, token.ASCII):
		return entry("mid", "audio/midi"), true
	case sig.CheckString(s, "wOFF", 0, token.ASCII):
		return entry("woff", "font/woff"), true
	case sig.CheckString(s, "wOF2", 0, token.ASCII):
		return entry("woff2", "font/woff2"), true
	case (sig.Check(s, []byte{0xA1, 0xB2, 0xC3, 0xD4}, 0, nil) || sig.Check(s, []byte{0xD4, 0xC3, 0xB2, 0xA1}, 0, nil)):
		return entry("pcap", "application/vnd.tcpdump.pcap"), true
	case sig.CheckString(s, "DSD ", 0, token.ASCII):
		return entry("dsf", "audio/x-dsf"), true
	case sig.Check(s, []byte{0x4C, 0x5A, 0x49, 0x50}, 0, nil):
		return entry("lz", "application/x-lzip"), true
	case sig.CheckString(s, "fLaC", 0, token.ASCII):
		return entry("flac", "audio/x-flac"), true
	case sig.Check(s, []byte{0x42, 0x50, 0x47, 0xFB}, 0, nil):
		return entry("bpg", "image/bpg"), true
	case sig.CheckString(s, "wvpk", 0, token.ASCII):
		return entry("wv", "audio/wavpack"), true
	case sig.CheckString(s, "%PDF", 0, token.ASCII):
		return entry("pdf", "application/pdf"), true
	case sig.Check(s, []byte{0x00, 0x61, 0x73, 0x6D}, 0, nil):
		return entry("wasm", "application/wasm"), true
	case sig.Check(s, []byte{0x49, 0x49, 0x2A, 0x00}, 0, nil):
		return tiffOrRaw(s, binary.LittleEndian), true
	case sig.Check(s, []byte{0x4D, 0x4D, 0x00, 0x2A}, 0, nil):
		return tiffOrRaw(s, binary.BigEndian), true
	case sig.CheckString(s, "MAC ", 0, token.ASCII):
		return entry("ape", "audio/ape"), true
	case sig.Check(s, []byte{0x1A, 0x45, 0xDF, 0xA3}, 0, nil):
		if e := container.EBML(s); e != (catalog.Entry{}) {
			return e, true
		}
		return catalog.Entry{}, false
	case sig.CheckString(s, "SQLi", 0, token.ASCII):
		return entry("sqlite", "application/x-sqlite3"), true
	case sig.Check(s, []byte{0x4E, 0x45, 0x53, 0x1A}, 0, nil):
		return entry("nes", "application/x-nintendo-nes-rom"), true
	case sig.CheckString(s, "Cr24", 0, token.ASCII):
		return entry("crx", "application/x-google-chrome-extension"), true
	case sig.CheckString(s, "MSCF", 0, token.ASCII), sig.Check(s, []byte{'I', 'S', 'c', '('}, 0, nil):
		return entry("cab", "application/vnd.ms-cab-compressed"), true
	case sig.Check(s, []byte{0xED, 0xAB, 0xEE, 0xDB}, 0, nil):
		return entry("rpm", "application/x-rpm"), true
	case sig.Check(s, []byte{0xC5, 0xD0, 0xD3, 0xC6}, 0, nil):
		return entry("eps", "application/eps"), true
	case sig.Check(s, []byte{0x28, 0xB5, 0x2F, 0xFD}, 0, nil):
		return entry("zst", "application/zstd"), true
	case sig.Check(s, []byte{0x7F, 'E', 'L', 'F'}, 0, nil):
		return entry("elf", "application/x-elf"), true
	case sig.Check(s, []byte{0x21, 0x42, 0x44, 0x4E}, 0, nil):
		return entry("pst", "application/vnd.ms-outlook"), true
	case sig.CheckString(s, "PAR1", 0, token.ASCII):
		return entry("parquet", "application/vnd.apache.parquet"), true
	case sig.CheckString(s, "PAR2", 0, token.ASCII):
		return entry("par2", "application/x-par2"), true
	case sig.CheckString(s, "ttcf", 0, token.ASCII):
		return entry("ttc", "font/collection"), true
	case sig.Check(s, []byte{0xCF, 0xFA, 0xED, 0xFE}, 0, nil):
		return entry("macho", "application/x-mach-binary"), true
	case sig.Check(s, []byte{0x04, 0x22, 0x4D, 0x18}, 0, nil):
		return entry("lz4", "application/x-lz4"), true
	case sig.CheckString(s, "regf", 0, token.ASCII):
		return entry("reg", "application/x-ms-regedit"), true
	}
	return catalog.Entry{}, false
}

func tiffOrRaw(s []byte, bo binary.ByteOrder) catalog.Entry {
	if e := container.TIFF(s, bo); e != (catalog.Entry{}) {
		return e
	}
	return entry("tif", "image/tiff")
}

func battery5(s []byte) (catalog.Entry, bool) {
	switch {
	case sig.CheckString(s, "OTTO\x00", 0, token.ASCII):
		return entry("otf", "font/otf"), true
	case sig.CheckString(s, "#!AMR", 0, token.ASCII):
		return entry("amr", "audio/amr"), true
	case sig.CheckString(s, "{\\rtf", 0, token.ASCII):
		return entry("rtf", "text/rtf"), true
	case sig.Check(s, []byte{'F', 'L', 'V', 0x01}, 0, nil):
		return entry("flv", "video/x-flv"), true
	case sig.CheckString(s, "IMPM", 0, token.ASCII):
		return entry("it", "audio/x-it"), true
	case lzhVariant(s):
		return entry("lzh", "application/x-lzh-compressed"), true
	case sig.Check(s, []byte{0x00, 0x00, 0x01, 0xBA}, 0, nil):
		return mpegPSSubfamily(s), true
	case sig.CheckString(s, "ITSF", 0, token.ASCII):
		return entry("chm", "application/vnd.ms-htmlhelp"), true
	case sig.Check(s, []byte{0xCA, 0xFE, 0xBA, 0xBE}, 0, nil):
		return entry("class", "application/java-vm"), true
	case sig.CheckString(s, ".RMF", 0, token.ASCII):
		return entry("rm", "application/vnd.rn-realmedia"), true
	case sig.CheckString(s, "DRACO", 0, token.ASCII):
		return entry("drc", "image/vnd.google.draco"), true
	}
	return catalog.Entry{}, false
}

func mpegPSSubfamily(s []byte) catalog.Entry {
	if len(s) > 4 && s[4]&0xF1 == 0x21 {
		return entry("mpg", "video/mpeg") // MPEG-1 system stream (MP1S)
	}
	return entry("mpg", "video/mpeg") // MPEG-2 program stream (MP2P)
}

func lzhVariant(s []byte) bool {
	if len(s) < 7 || s[2] != '-' || s[6] != '-' {
		return false
	}
	switch string(s[3:6]) {
	case "lh0", "lh1", "lh2", "lh3", "lh4", "lh5", "lh6", "lh7", "lzs", "lz4", "lz5", "lhd":
		return true
	}
	return false
}

func battery6(s []byte) (catalog.Entry, bool) {
	switch {
	case sig.Check(s, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, 0, nil):
		return entry("xz", "application/x-xz"), true
	case sig.CheckString(s, "<?xml ", 0, token.ASCII):
		return entry("xml", "application/xml"), true
	case sig.Check(s, []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}, 0, nil):
		return entry("7z", "application/x-7z-compressed"), true
	case sig.Check(s, []byte{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07}, 0, nil) && len(s) > 6 && (s[6] == 0x00 || s[6] == 0x01):
		return entry("rar", "application/x-rar-compressed"), true
	case sig.CheckString(s, "solid ", 0, token.ASCII):
		return entry("stl", "model/stl"), true
	case autocadVersion(s):
		return entry("dwg", "image/vnd.dwg"), true
	case sig.CheckString(s, "070707", 0, token.ASCII):
		return entry("cpio", "application/x-cpio"), true
	}
	return catalog.Entry{}, false
}

// autocadVersion implements the engine's resolution of the original
// loose "^d*" regex: the 4 ASCII bytes after "AC" parse as a decimal
// integer in [1000, 1050].
func autocadVersion(s []byte) bool {
	if len(s) < 6 || s[0] != 'A' || s[1] != 'C' {
		return false
	}
	n, err := strconv.Atoi(string(s[2:6]))
	if err != nil {
		return false
	}
	return n >= 1000 && n <= 1050
}

func battery7(s []byte) (catalog.Entry, bool) {
	switch {
	case sig.CheckString(s, "BLENDER", 0, token.ASCII):
		return entry("blend", "application/x-blender"), true
	case sig.CheckString(s, "!<arch>", 0, token.ASCII):
		if len(s) >= 8+13 && string(s[8:21]) == "debian-binary" {
			return entry("deb", "application/vnd.debian.binary-package"), true
		}
		return entry("ar", "application/x-unix-archive"), true
	case sig.CheckString(s, "WEBVTT", 0, token.ASCII) && webvttTerminator(s):
		return entry("vtt", "text/vtt"), true
	}
	return catalog.Entry{}, false
}

func webvttTerminator(s []byte) bool {
	if len(s) == 6 {
		return true
	}
	switch s[6] {
	case '\n', '\r', '\t', ' ':
		return true
	}
	return false
}

func battery8(s []byte) (catalog.Entry, bool) {
	switch {
	case sig.Check(s, container.PNGSignature, 0, nil):
		return container.PNG(s), true
	case sig.CheckString(s, "ARROW1\x00\x00", 0, token.ASCII):
		return entry("arrow", "application/vnd.apache.arrow.file"), true
	case sig.Check(s, []byte{0x67, 0x6C, 0x54, 0x46, 0x02, 0x00, 0x00, 0x00}, 0, nil):
		return entry("glb", "model/gltf-binary"), true
	case quickTimeAtom(s):
		return entry("mov", "video/quicktime"), true
	}
	return catalog.Entry{}, false
}

func quickTimeAtom(s []byte) bool {
	if len(s) < 8 {
		return false
	}
	switch string(s[4:8]) {
	case "free", "mdat", "moov", "wide":
		return true
	}
	return false
}

func battery9(s []byte) (catalog.Entry, bool) {
	switch {
	case sig.Check(s, []byte{'I', 'I', 'R', 'O', 0x08}, 0, nil):
		return entry("orf", "image/x-olympus-orf"), true
	case sig.CheckString(s, "gimp xcf ", 0, token.ASCII):
		return entry("xcf", "image/x-xcf"), true
	default:
		if e, ok := container.ISOBMFF(s); ok {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

func battery12(r *token.Reader, s []byte) (catalog.Entry, bool) {
	if e, ok := container.RIFF(s); ok {
		return e, true
	}
	switch {
	case sig.Check(s, []byte{0x49, 0x49, 0x55, 0x00, 0x18, 0x00, 0x00, 0x00, 0x88, 0xE7, 0x74, 0xD8}, 0, nil):
		return entry("rw2", "image/x-panasonic-rw2"), true
	case sig.Check(s, []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C}, 0, nil):
		return asfProbe(r, s), true
	case sig.Check(s, []byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, '\r', '\n', 0x1A, '\n'}, 0, nil):
		return entry("ktx", "image/ktx"), true
	case sig.CheckString(s, "MIE", 0, token.ASCII):
		return entry("mie", "application/x-mie"), true
	case sig.Check(s, []byte{0x00, 0x00, 0x27, 0x0A}, 0, nil):
		return entry("shp", "application/x-esri-shape"), true
	case sig.Check(s, []byte{0xFF, 0x4F, 0xFF, 0x51}, 0, nil):
		return entry("j2c", "image/j2c"), true
	case sig.Check(s, container.JPEG2000Signature, 0, nil):
		return container.JPEG2000(s), true
	case sig.Check(s, []byte{0xFF, 0x0A}, 0, nil):
		return entry("jxl", "image/jxl"), true
	case sig.Check(s, []byte{0x00, 0x00, 0x00, 0x0C, 'J', 'X', 'L', ' ', 0x0D, 0x0A, 0x87, 0x0A}, 0, nil):
		return entry("jxl", "image/jxl"), true
	case sig.Check(s, []byte{0xFE, 0xFF}, 0, nil) && sig.CheckString(s, "<?xml ", 2, token.UTF16BE):
		return entry("xml", "application/xml"), true
	case sig.Check(s, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, 0, nil):
		return entry("cfb", "application/x-cfb"), true
	}
	return catalog.Entry{}, false
}

// asfProbe re-peeks up to 1KB so the ASF stream-properties walk (which
// needs more than the 12 byte signature tier) can see its Stream
// Properties Object even though the header GUID matched in the smaller
// sample.
func asfProbe(r *token.Reader, fallback []byte) catalog.Entry {
	big, err := r.Peek(1024, true)
	if err != nil || len(big) < len(fallback) {
		big = fallback
	}
	return container.ASF(big)
}
