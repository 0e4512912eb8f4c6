// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package filetype identifies the concrete format of an opaque byte
// sequence by inspecting its leading bytes and, where necessary, its
// structured container metadata. It never decodes content and never
// trusts a filename or an HTTP Content-Type header; the result is
// always derived from the bytes themselves.
package filetype

import (
	"context"

	"github.com/cosnicolaou/filetype/catalog"
	"github.com/cosnicolaou/filetype/internal/confident"
	"github.com/cosnicolaou/filetype/internal/imprecise"
	"github.com/cosnicolaou/filetype/internal/token"
)

// Result is the outcome of a detection: an {extension, media-type} pair
// drawn from the published Catalogue, or Unknown.
type Result = catalog.Entry

// Unknown is the zero Result, returned whenever no detector recognizes
// the input.
var Unknown = Result{}

// Detector is a pluggable format recognizer. ID identifies the detector
// for diagnostics; two built-in detectors are always appended after any
// caller-supplied ones: "core" (the confident battery) and
// "core.imprecise" (the fallback battery).
type Detector interface {
	ID() string
	Detect(ctx context.Context, t *Tokenizer) (Result, bool, error)
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc struct {
	Name string
	Func func(ctx context.Context, t *Tokenizer) (Result, bool, error)
}

// ID implements Detector.
func (f DetectorFunc) ID() string { return f.Name }

// Detect implements Detector.
func (f DetectorFunc) Detect(ctx context.Context, t *Tokenizer) (Result, bool, error) {
	return f.Func(ctx, t)
}

// Tokenizer is the positioned byte cursor handed to Detector
// implementations: a thin, exported facade over the internal tokenizer
// so that custom detectors outside this module can implement Detector
// without reaching into an internal package.
type Tokenizer struct {
	r *token.Reader
}

// Peek returns up to n bytes from the current position without
// advancing it.
func (t *Tokenizer) Peek(n int, mayBeLess bool) ([]byte, error) { return t.r.Peek(n, mayBeLess) }

// Read returns up to n bytes and advances the position by that many.
func (t *Tokenizer) Read(n int, mayBeLess bool) ([]byte, error) { return t.r.Read(n, mayBeLess) }

// Skip advances the position by exactly n bytes.
func (t *Tokenizer) Skip(n int) error { return t.r.Skip(n) }

// Position returns the current cursor position.
func (t *Tokenizer) Position() int64 { return t.r.Position() }

// Size returns the source's known length, or token.Unknown.
func (t *Tokenizer) Size() int64 { return t.r.Size() }

// config is the resolved set of options a Parser is built from.
type config struct {
	mpegOffsetTolerance uint
	customDetectors     []Detector
	sampleSize          uint
}

// Option configures a Parser.
type Option func(*config)

// MPEGOffsetTolerance bounds how many bytes past nominal offset 0 the
// imprecise MPEG audio sync scan will search. Default 0.
func MPEGOffsetTolerance(n uint) Option {
	return func(c *config) { c.mpegOffsetTolerance = n }
}

// CustomDetectors prepends user-supplied detectors ahead of the
// built-ins, in the order given.
func CustomDetectors(ds ...Detector) Option {
	return func(c *config) { c.customDetectors = append(c.customDetectors, ds...) }
}

// SampleSize sets the prefix length the transparent detection stream
// buffers for detection. Default 4100.
func SampleSize(n uint) Option {
	return func(c *config) { c.sampleSize = n }
}

// Parser is a constructed, read-only detector registry: user-supplied
// detectors, then "core", then "core.imprecise". A Parser may be shared
// across concurrent detections.
type Parser struct {
	cfg config
}

// NewParser builds a Parser from opts.
func NewParser(opts ...Option) *Parser {
	cfg := config{sampleSize: 4100}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{cfg: cfg}
}

// Detect runs the registered detectors against r in order: any
// user-supplied detectors first, then the confident battery, then the
// imprecise battery. The first detector to return a result wins; a
// detector that consumes bytes without producing a result halts the
// pipeline at "unknown" rather than falling through to the next one.
func (p *Parser) Detect(ctx context.Context, r *token.Reader) (Result, bool, error) {
	p0 := r.Position()

	for _, d := range p.cfg.customDetectors {
		t := &Tokenizer{r: r}
		res, ok, err := d.Detect(ctx, t)
		if err != nil {
			return Unknown, false, err
		}
		if ok {
			return res, true, nil
		}
		if r.Position() != p0 {
			return Unknown, false, nil
		}
	}

	res, ok, consumed, err := confident.Detect(ctx, r, confident.Options{Nested: p.nestedDetect})
	if err != nil {
		return Unknown, false, err
	}
	if ok {
		return res, true, nil
	}
	if consumed || r.Position() != p0 {
		return Unknown, false, nil
	}

	res, ok, err = imprecise.Detect(r, p.cfg.mpegOffsetTolerance)
	if err != nil {
		return Unknown, false, err
	}
	if ok {
		return res, true, nil
	}
	if r.Position() != p0 {
		return Unknown, false, nil
	}

	return Unknown, false, nil
}

// nestedDetect is passed to the confident battery as its re-entry point
// for the ID3v2 skip and gzip->TAR descent arms, so that those see the
// whole pipeline (including any user-supplied detectors) rather than
// just the confident battery recursing into itself.
func (p *Parser) nestedDetect(ctx context.Context, r *token.Reader) (Result, bool, error) {
	return p.Detect(ctx, r)
}
