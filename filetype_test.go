// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package filetype_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cosnicolaou/filetype"
	"github.com/cosnicolaou/filetype/facade"
	"github.com/google/go-cmp/cmp"
)

func detect(t *testing.T, p *filetype.Parser, data []byte) (filetype.Result, bool) {
	t.Helper()
	ctx := context.Background()
	src := facade.Buffer(data)
	res, ok, err := p.Detect(ctx, src.Tokenizer(ctx))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	return res, ok
}

func TestDetectBuiltins(t *testing.T) {
	p := filetype.NewParser()
	for _, tc := range []struct {
		name string
		data []byte
		want filetype.Result
	}{
		{"bmp", []byte{0x42, 0x4D, 0, 0, 0, 0}, filetype.Result{Ext: "bmp", MIME: "image/bmp"}},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13, 'I', 'D', 'A', 'T'}, filetype.Result{Ext: "png", MIME: "image/png"}},
		{"gif", []byte("GIF89a"), filetype.Result{Ext: "gif", MIME: "image/gif"}},
		{"bz2", []byte("BZh9" + "1AY&SY")[:6], filetype.Result{Ext: "bz2", MIME: "application/x-bzip2"}},
		{"exe", []byte{0x4D, 0x5A, 0x90, 0x00}, filetype.Result{Ext: "exe", MIME: "application/x-msdownload"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := detect(t, p, tc.data)
			if !ok {
				t.Fatalf("Detect(%s) ok = false", tc.name)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Detect(%s) mismatch (-want +got):\n%s", tc.name, diff)
			}
		})
	}
}

func TestDetectUnknown(t *testing.T) {
	p := filetype.NewParser()
	_, ok := detect(t, p, []byte("plain text, nothing special"))
	if ok {
		t.Errorf("Detect(plain text) ok = true, want false")
	}
}

func TestDetectEmpty(t *testing.T) {
	p := filetype.NewParser()
	_, ok := detect(t, p, nil)
	if ok {
		t.Errorf("Detect(empty) ok = true, want false")
	}
}

func TestDetectBoundaryLengthsNeverPanic(t *testing.T) {
	p := filetype.NewParser()
	lengths := []int{}
	for n := 0; n <= 13; n++ {
		lengths = append(lengths, n)
	}
	for n := 255; n <= 257; n++ {
		lengths = append(lengths, n)
	}
	for n := 511; n <= 513; n++ {
		lengths = append(lengths, n)
	}
	for _, n := range lengths {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Detect panicked on length %d: %v", n, r)
				}
			}()
			detect(t, p, data)
		}()
	}
}

func TestDetectDeterministic(t *testing.T) {
	p := filetype.NewParser()
	data := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13, 'I', 'D', 'A', 'T'}
	first, ok1 := detect(t, p, data)
	second, ok2 := detect(t, p, data)
	if ok1 != ok2 || first != second {
		t.Errorf("Detect not deterministic: (%v,%v) vs (%v,%v)", first, ok1, second, ok2)
	}
}

type preemptDetector struct{}

func (preemptDetector) ID() string { return "preempt" }
func (preemptDetector) Detect(ctx context.Context, t *filetype.Tokenizer) (filetype.Result, bool, error) {
	return filetype.Result{Ext: "custom", MIME: "application/x-custom"}, true, nil
}

type deferDetector struct{}

func (deferDetector) ID() string { return "defer" }
func (deferDetector) Detect(ctx context.Context, t *filetype.Tokenizer) (filetype.Result, bool, error) {
	return filetype.Unknown, false, nil
}

type haltDetector struct{}

func (haltDetector) ID() string { return "halt" }
func (haltDetector) Detect(ctx context.Context, t *filetype.Tokenizer) (filetype.Result, bool, error) {
	if err := t.Skip(1); err != nil {
		return filetype.Unknown, false, err
	}
	return filetype.Unknown, false, nil
}

func TestCustomDetectorPreempts(t *testing.T) {
	p := filetype.NewParser(filetype.CustomDetectors(preemptDetector{}))
	got, ok := detect(t, p, []byte{0x42, 0x4D, 0, 0})
	if !ok || got.Ext != "custom" {
		t.Fatalf("Detect() = %+v, %v, want custom detector's result", got, ok)
	}
}

func TestCustomDetectorDefersToBuiltins(t *testing.T) {
	p := filetype.NewParser(filetype.CustomDetectors(deferDetector{}))
	got, ok := detect(t, p, []byte{0x42, 0x4D, 0, 0})
	if !ok || got.Ext != "bmp" {
		t.Fatalf("Detect() = %+v, %v, want built-in bmp result", got, ok)
	}
}

func TestCustomDetectorHaltsOnPartialConsumption(t *testing.T) {
	p := filetype.NewParser(filetype.CustomDetectors(haltDetector{}))
	_, ok := detect(t, p, []byte{0x42, 0x4D, 0, 0})
	if ok {
		t.Fatalf("Detect() ok = true, want false (halted at unknown)")
	}
}

func TestCustomSampleSize(t *testing.T) {
	p := filetype.NewParser(filetype.SampleSize(8))
	ctx := context.Background()
	stream, err := p.DetectStream(ctx, bytes.NewReader([]byte("GIF89a and then a lot more trailing data past the sample")))
	if err != nil {
		t.Fatalf("DetectStream: %v", err)
	}
	if stream.Result().Ext != "gif" {
		t.Errorf("Result().Ext = %q, want gif", stream.Result().Ext)
	}
}
