// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package catalog is the closed, published set of {extension, media-type}
// pairs the detection engine can emit. It is an external collaborator per
// the engine's own design (the engine never invents an entry that isn't
// listed here) but lives in this module since the surrounding project has
// no other home for it.
package catalog

import "sort"

// Entry is one row of the catalogue.
type Entry struct {
	Ext  string
	MIME string
}

// Table lists every entry this engine can produce, sorted lexicographically
// by extension.
var Table = []Entry{
	{"3g2", "video/3gpp2"},
	{"3gp", "video/3gpp"},
	{"3mf", "application/vnd.ms-package.3dmanufacturing-3dmodel+xml"},
	{"7z", "application/x-7z-compressed"},
	{"aac", "audio/aac"},
	{"ac3", "audio/vnd.dolby.dd-raw"},
	{"ace", "application/x-ace-compressed"},
	{"aif", "audio/x-aiff"},
	{"alias", "application/x.apple.alias"},
	{"amr", "audio/amr"},
	{"ape", "audio/ape"},
	{"apk", "application/vnd.android.package-archive"},
	{"apng", "image/apng"},
	{"ar", "application/x-unix-archive"},
	{"arj", "application/x-arj"},
	{"arrow", "application/vnd.apache.arrow.file"},
	{"arw", "image/x-sony-arw"},
	{"asar", "application/x-asar"},
	{"asf", "video/x-ms-asf"},
	{"avi", "video/x-msvideo"},
	{"avif", "image/avif"},
	{"blend", "application/x-blender"},
	{"bmp", "image/bmp"},
	{"bpg", "image/bpg"},
	{"bz2", "application/x-bzip2"},
	{"cab", "application/vnd.ms-cab-compressed"},
	{"cfb", "application/x-cfb"},
	{"chm", "application/vnd.ms-htmlhelp"},
	{"class", "application/java-vm"},
	{"cpio", "application/x-cpio"},
	{"cr2", "image/x-canon-cr2"},
	{"cr3", "image/x-canon-cr3"},
	{"crx", "application/x-google-chrome-extension"},
	{"cur", "image/x-icon"},
	{"dcm", "application/dicom"},
	{"deb", "application/vnd.debian.binary-package"},
	{"dmg", "application/x-apple-diskimage"},
	{"dng", "image/x-adobe-dng"},
	{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{"dotx", "application/vnd.openxmlformats-officedocument.wordprocessingml.template"},
	{"drc", "image/vnd.google.draco"},
	{"dsf", "audio/x-dsf"},
	{"dwg", "image/vnd.dwg"},
	{"elf", "application/x-elf"},
	{"eot", "application/vnd.ms-fontobject"},
	{"eps", "application/eps"},
	{"epub", "application/epub+zip"},
	{"exe", "application/x-msdownload"},
	{"f4a", "audio/mp4"},
	{"f4b", "audio/mp4"},
	{"f4p", "video/mp4"},
	{"f4v", "video/mp4"},
	{"fbx", "application/x-fbx"},
	{"flac", "audio/x-flac"},
	{"flif", "image/flif"},
	{"flv", "video/x-flv"},
	{"gif", "image/gif"},
	{"glb", "model/gltf-binary"},
	{"gz", "application/gzip"},
	{"heic", "image/heic"},
	{"icc", "application/vnd.iccprofile"},
	{"icns", "image/icns"},
	{"ico", "image/x-icon"},
	{"indd", "application/x-indesign"},
	{"it", "audio/x-it"},
	{"j2c", "image/j2c"},
	{"jar", "application/java-archive"},
	{"jls", "image/jls"},
	{"jp2", "image/jp2"},
	{"jpg", "image/jpeg"},
	{"jpm", "image/jpm"},
	{"jpx", "image/jpx"},
	{"jxl", "image/jxl"},
	{"jxr", "image/jxr"},
	{"ktx", "image/ktx"},
	{"lnk", "application/x.ms.shortcut"},
	{"lz", "application/x-lzip"},
	{"lz4", "application/x-lz4"},
	{"lzh", "application/x-lzh-compressed"},
	{"m2ts", "video/mp2t"},
	{"macho", "application/x-mach-binary"},
	{"m4a", "audio/x-m4a"},
	{"m4b", "audio/mp4"},
	{"m4p", "video/mp4"},
	{"m4v", "video/x-m4v"},
	{"mid", "audio/midi"},
	{"mie", "application/x-mie"},
	{"mj2", "video/mj2"},
	{"mkv", "video/x-matroska"},
	{"mobi", "application/x-mobipocket-ebook"},
	{"mov", "video/quicktime"},
	{"mp1", "audio/mpeg"},
	{"mp2", "audio/mpeg"},
	{"mp3", "audio/mpeg"},
	{"mp4", "video/mp4"},
	{"mpc", "audio/musepack"},
	{"mpg", "video/mpeg"},
	{"mxf", "application/mxf"},
	{"nef", "image/x-nikon-nef"},
	{"nes", "application/x-nintendo-nes-rom"},
	{"odp", "application/vnd.oasis.opendocument.presentation"},
	{"ods", "application/vnd.oasis.opendocument.spreadsheet"},
	{"odt", "application/vnd.oasis.opendocument.text"},
	{"ogg", "audio/ogg"},
	{"ogv", "video/ogg"},
	{"ogx", "application/ogg"},
	{"opus", "audio/opus"},
	{"orf", "image/x-olympus-orf"},
	{"otf", "font/otf"},
	{"par2", "application/x-par2"},
	{"parquet", "application/vnd.apache.parquet"},
	{"pcap", "application/vnd.tcpdump.pcap"},
	{"pdf", "application/pdf"},
	{"pgp", "application/pgp-encrypted"},
	{"png", "image/png"},
	{"potx", "application/vnd.openxmlformats-officedocument.presentationml.template"},
	{"pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	{"ps", "application/postscript"},
	{"psd", "image/vnd.adobe.photoshop"},
	{"pst", "application/vnd.ms-outlook"},
	{"qcp", "audio/qcelp"},
	{"raf", "image/x-fujifilm-raf"},
	{"rar", "application/x-rar-compressed"},
	{"reg", "application/x-ms-regedit"},
	{"rm", "application/vnd.rn-realmedia"},
	{"rpm", "application/x-rpm"},
	{"rtf", "text/rtf"},
	{"rw2", "image/x-panasonic-rw2"},
	{"s3m", "audio/x-s3m"},
	{"shp", "application/x-esri-shape"},
	{"skp", "application/vnd.sketchup.skp"},
	{"sqlite", "application/x-sqlite3"},
	{"stl", "model/stl"},
	{"swf", "application/x-shockwave-flash"},
	{"tar", "application/x-tar"},
	{"tar.gz", "application/gzip"},
	{"tif", "image/tiff"},
	{"ts", "video/mp2t"},
	{"ttc", "font/collection"},
	{"ttf", "font/ttf"},
	{"vcf", "text/vcard"},
	{"voc", "audio/x-voc"},
	{"vtt", "text/vtt"},
	{"wasm", "application/wasm"},
	{"wav", "audio/x-wav"},
	{"webm", "video/webm"},
	{"webp", "image/webp"},
	{"woff", "font/woff"},
	{"woff2", "font/woff2"},
	{"wv", "audio/wavpack"},
	{"xcf", "image/x-xcf"},
	{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{"xltx", "application/vnd.openxmlformats-officedocument.spreadsheetml.template"},
	{"xm", "audio/x-xm"},
	{"xml", "application/xml"},
	{"xpi", "application/x-xpinstall"},
	{"xz", "application/x-xz"},
	{"z", "application/x-compress"},
	{"zip", "application/zip"},
	{"zst", "application/zstd"},
}

var (
	byExt  = map[string]string{}
	mimes  = map[string]bool{}
	noMIME = Entry{}
)

func init() {
	sort.Slice(Table, func(i, j int) bool { return Table[i].Ext < Table[j].Ext })
	for _, e := range Table {
		byExt[e.Ext] = e.MIME
		mimes[e.MIME] = true
	}
}

// Lookup returns the entry for ext, and whether it is in the catalogue.
func Lookup(ext string) (Entry, bool) {
	m, ok := byExt[ext]
	if !ok {
		return noMIME, false
	}
	return Entry{Ext: ext, MIME: m}, true
}

// HasMIME reports whether mime is one of the catalogue's media types.
func HasMIME(mime string) bool { return mimes[mime] }

// HasExt reports whether ext is one of the catalogue's extensions.
func HasExt(ext string) bool { _, ok := byExt[ext]; return ok }
