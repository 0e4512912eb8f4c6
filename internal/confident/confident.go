// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package confident implements the ordered, high-confidence signature
// battery: the detector that runs first and, on a match, is never second
// guessed. It is organized the way the teacher organizes its own
// bit-level decode passes (internal/bzip2/block.go's ordered sequence of
// block-header checks) generalized from "one format" to "one arm per
// pattern, tried in a fixed order until one matches."
package confident

import (
	"compress/gzip"
	"context"
	"io"

	"github.com/cosnicolaou/filetype/catalog"
	"github.com/cosnicolaou/filetype/internal/token"
)

// Options carries the single piece of context the battery needs from its
// caller: a way to re-enter the full detection pipeline (built-ins plus
// any user-supplied detectors) for the two arms that peel off a framing
// layer and hand the remainder back to the whole engine rather than just
// this package (ID3v2 skip, gzip transparent descent).
type Options struct {
	Nested func(ctx context.Context, r *token.Reader) (catalog.Entry, bool, error)
}

// sampleTiers are the escalating prefix sizes the battery samples at,
// matching the "32 -> 256 -> 512" growth the arms below are bucketed
// into; a final 4100 tier covers stragglers that need the full sample
// bound (none currently do, but the tier is preserved for arms added
// later, per the detection context's own maximum sample size).
var sampleTiers = []int{32, 256, 512, 4100}

// Detect runs the ordered battery against r. It returns ok=false with no
// error when nothing matches and the reader was left at its entry
// position; consumed=true distinguishes an internal recursive consumption
// (BOM strip, ID3 skip, gzip descent) that itself resolved to "unknown",
// which the caller must treat as a terminal unknown rather than falling
// through to the next detector.
func Detect(ctx context.Context, r *token.Reader, opts Options) (entry catalog.Entry, ok bool, consumed bool, err error) {
	var sample []byte
	for _, tier := range sampleTiers {
		sample, err = r.Peek(tier, true)
		if err != nil {
			return catalog.Entry{}, false, false, err
		}
		if len(sample) == 0 {
			return catalog.Entry{}, false, false, nil
		}
		entry, ok, consumed, err = runTier(ctx, r, sample, tier, opts)
		if err != nil || ok || consumed {
			return entry, ok, consumed, err
		}
		if len(sample) < tier {
			break // source exhausted before filling this tier; no point escalating further.
		}
	}
	return catalog.Entry{}, false, false, nil
}

func runTier(ctx context.Context, r *token.Reader, sample []byte, tier int, opts Options) (catalog.Entry, bool, bool, error) {
	switch tier {
	case 32:
		return battery32(ctx, r, sample, opts)
	case 256:
		if e, ok := battery256(sample); ok {
			return e, true, false, nil
		}
	case 512:
		if e, ok := battery512(sample); ok {
			return e, true, false, nil
		}
	}
	return catalog.Entry{}, false, false, nil
}

// gunzipAndDetectTar implements the gzip arm's transparent descent: it
// inflates the gzip member and runs the full pipeline over the
// decompressed bytes through opts.Nested, reporting tar.gz when that
// nested call resolves to tar, otherwise gz.
func gunzipAndDetectTar(ctx context.Context, gzipStream io.Reader, opts Options) (catalog.Entry, bool, error) {
	zr, err := gzip.NewReader(gzipStream)
	if err != nil {
		return catalog.Entry{Ext: "gz", MIME: "application/gzip"}, true, nil
	}
	defer zr.Close()
	nested := token.NewReader(ctx, zr, token.Unknown)
	if opts.Nested == nil {
		return catalog.Entry{Ext: "gz", MIME: "application/gzip"}, true, nil
	}
	e, ok, nerr := opts.Nested(ctx, nested)
	if nerr != nil || !ok {
		return catalog.Entry{Ext: "gz", MIME: "application/gzip"}, true, nil
	}
	if e.Ext == "tar" {
		return catalog.Entry{Ext: "tar.gz", MIME: "application/gzip"}, true, nil
	}
	return catalog.Entry{Ext: "gz", MIME: "application/gzip"}, true, nil
}
