// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package facade_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cosnicolaou/filetype"
	"github.com/cosnicolaou/filetype/facade"
	"github.com/google/go-cmp/cmp"
)

func TestBufferSource(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	src := facade.Buffer(png)
	ctx := context.Background()
	r := src.Tokenizer(ctx)

	if _, _, ok := r.ReaderAt(); !ok {
		t.Fatalf("Buffer source should support random access")
	}

	p := filetype.NewParser()
	got, ok, err := p.Detect(ctx, r)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if !ok {
		t.Fatalf("Detect: no match")
	}
	want := filetype.Result{Ext: "png", MIME: "image/png"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Detect mismatch (-want +got):\n%s", diff)
	}
}

func TestStreamSource(t *testing.T) {
	src := facade.Stream(strings.NewReader("not a known format"))
	ctx := context.Background()
	r := src.Tokenizer(ctx)

	if _, _, ok := r.ReaderAt(); ok {
		t.Fatalf("Stream source should not support random access")
	}

	p := filetype.NewParser()
	_, ok, err := p.Detect(ctx, r)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if ok {
		t.Fatalf("Detect: unexpectedly matched plain text")
	}
}
