// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"
	"unicode/utf16"
)

// Encoding names the text encodings used by fixed-length string tokens
// and by the pattern predicates in internal/sig.
type Encoding int

const (
	ASCII Encoding = iota
	Latin1
	UTF16LE
	UTF16BE
)

// PeekU8 returns the byte at the current position without advancing it.
func (r *Reader) PeekU8() (uint8, error) {
	b, err := r.Peek(1, false)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU8 reads and consumes one byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.Read(1, false)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// PeekU16BE peeks a big-endian 16 bit value.
func (r *Reader) PeekU16BE() (uint16, error) {
	b, err := r.Peek(2, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// PeekU16LE peeks a little-endian 16 bit value.
func (r *Reader) PeekU16LE() (uint16, error) {
	b, err := r.Peek(2, false)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU16BE reads and consumes a big-endian 16 bit value.
func (r *Reader) ReadU16BE() (uint16, error) {
	b, err := r.Read(2, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU16LE reads and consumes a little-endian 16 bit value.
func (r *Reader) ReadU16LE() (uint16, error) {
	b, err := r.Read(2, false)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// PeekU32BE peeks a big-endian 32 bit value.
func (r *Reader) PeekU32BE() (uint32, error) {
	b, err := r.Peek(4, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// PeekU32LE peeks a little-endian 32 bit value.
func (r *Reader) PeekU32LE() (uint32, error) {
	b, err := r.Peek(4, false)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU32BE reads and consumes a big-endian 32 bit value.
func (r *Reader) ReadU32BE() (uint32, error) {
	b, err := r.Read(4, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU32LE reads and consumes a little-endian 32 bit value.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.Read(4, false)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64BE reads and consumes a big-endian 64 bit value.
func (r *Reader) ReadU64BE() (uint64, error) {
	b, err := r.Read(8, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadU64LE reads and consumes a little-endian 64 bit value.
func (r *Reader) ReadU64LE() (uint64, error) {
	b, err := r.Read(8, false)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadFixedString reads n bytes and decodes them under enc. UTF-16
// variants decode surrogate pairs into their combined rune.
func (r *Reader) ReadFixedString(n int, enc Encoding) (string, error) {
	b, err := r.Read(n, false)
	if err != nil {
		return "", err
	}
	return DecodeString(b, enc), nil
}

// DecodeString decodes b under enc, the inverse of EncodeString.
func DecodeString(b []byte, enc Encoding) string {
	switch enc {
	case UTF16LE, UTF16BE:
		units := make([]uint16, len(b)/2)
		for i := range units {
			if enc == UTF16LE {
				units[i] = binary.LittleEndian.Uint16(b[i*2:])
			} else {
				units[i] = binary.BigEndian.Uint16(b[i*2:])
			}
		}
		return string(utf16.Decode(units))
	default: // ASCII, Latin1: identity mapping onto runes 0..255.
		rs := make([]rune, len(b))
		for i, c := range b {
			rs[i] = rune(c)
		}
		return string(rs)
	}
}

// EncodeString is the inverse of DecodeString: it encodes s to bytes
// under enc, as used by the pattern predicates' check_string.
func EncodeString(s string, enc Encoding) []byte {
	switch enc {
	case UTF16LE, UTF16BE:
		units := utf16.Encode([]rune(s))
		out := make([]byte, len(units)*2)
		for i, u := range units {
			if enc == UTF16LE {
				binary.LittleEndian.PutUint16(out[i*2:], u)
			} else {
				binary.BigEndian.PutUint16(out[i*2:], u)
			}
		}
		return out
	default:
		out := make([]byte, 0, len(s))
		for _, c := range s {
			out = append(out, byte(c))
		}
		return out
	}
}

// ReadID3SyncSafeUint32 reads the ID3v2 sync-safe 28 bit length: four
// bytes, the high bit of each cleared, packed 7 bits at a time.
func (r *Reader) ReadID3SyncSafeUint32() (uint32, error) {
	b, err := r.Read(4, false)
	if err != nil {
		return 0, err
	}
	return DecodeSyncSafeUint32(b), nil
}

// DecodeSyncSafeUint32 decodes a 4 byte ID3 sync-safe integer already in hand.
func DecodeSyncSafeUint32(b []byte) uint32 {
	return uint32(b[0]&0x7F)<<21 | uint32(b[1]&0x7F)<<14 | uint32(b[2]&0x7F)<<7 | uint32(b[3]&0x7F)
}
