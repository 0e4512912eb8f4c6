// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package token

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestPeekDoesNotAdvance(t *testing.T) {
	r := NewReader(nil, bytes.NewReader([]byte("hello")), 5)
	if _, err := r.Peek(3, false); err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if r.Position() != 0 {
		t.Errorf("Position() = %d, want 0", r.Position())
	}
	b, err := r.Read(3, false)
	if err != nil || string(b) != "hel" {
		t.Fatalf("Read() = %q, %v, want %q, nil", b, err, "hel")
	}
	if r.Position() != 3 {
		t.Errorf("Position() = %d, want 3", r.Position())
	}
}

func TestPeekShortSource(t *testing.T) {
	r := NewReader(nil, bytes.NewReader([]byte("hi")), 2)
	if _, err := r.Peek(10, false); !errors.Is(err, ErrEndOfSource) {
		t.Fatalf("Peek() err = %v, want ErrEndOfSource", err)
	}
	b, err := r.Peek(10, true)
	if err != nil || string(b) != "hi" {
		t.Fatalf("Peek(mayBeLess) = %q, %v, want %q, nil", b, err, "hi")
	}
}

func TestSkip(t *testing.T) {
	r := NewReader(nil, bytes.NewReader([]byte("0123456789")), 10)
	if err := r.Skip(4); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if r.Position() != 4 {
		t.Errorf("Position() = %d, want 4", r.Position())
	}
	b, err := r.Read(2, false)
	if err != nil || string(b) != "45" {
		t.Fatalf("Read() = %q, %v, want %q, nil", b, err, "45")
	}
	if err := r.Skip(100); !errors.Is(err, ErrEndOfSource) {
		t.Fatalf("Skip(100) err = %v, want ErrEndOfSource", err)
	}
}

func TestAborted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewReader(ctx, bytes.NewReader([]byte("data")), 4)
	if _, err := r.Peek(1, false); !errors.Is(err, ErrAborted) {
		t.Fatalf("Peek() err = %v, want ErrAborted", err)
	}
}

func TestReaderAt(t *testing.T) {
	data := []byte("random-access-data")
	r := NewReaderAt(nil, bytes.NewReader(data), int64(len(data)))
	ra, size, ok := r.ReaderAt()
	if !ok {
		t.Fatalf("ReaderAt() ok = false, want true")
	}
	if size != int64(len(data)) {
		t.Errorf("size = %d, want %d", size, len(data))
	}
	buf := make([]byte, 6)
	if _, err := ra.ReadAt(buf, 7); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if string(buf) != "access" {
		t.Errorf("ReadAt = %q, want %q", buf, "access")
	}
}

func TestBoundedSizeUnknown(t *testing.T) {
	r := NewReader(nil, bytes.NewReader([]byte("x")), Unknown)
	if r.BoundedSize() <= 0 {
		t.Errorf("BoundedSize() = %d, want a large positive sentinel", r.BoundedSize())
	}
}
