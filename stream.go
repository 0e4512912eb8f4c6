// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package filetype

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/cosnicolaou/filetype/internal/token"
)

// Stream wraps a byte-producing source, running detection against its
// first sampleSize bytes while still delivering every byte of the
// original source to its Read method.
type Stream struct {
	result Result
	r      io.Reader
}

// DetectStream buffers the configured sample size worth of src, runs
// the Parser's detectors against it, and returns a Stream that yields
// the buffered prefix followed by the remainder of src. End-of-source
// while filling the prefix is not an error: it resolves to Unknown and
// the returned Stream still delivers whatever bytes were read.
func (p *Parser) DetectStream(ctx context.Context, src io.Reader) (*Stream, error) {
	prefix := make([]byte, p.cfg.sampleSize)
	n, err := io.ReadFull(src, prefix)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	prefix = prefix[:n]

	r := token.NewReader(ctx, bytes.NewReader(prefix), int64(n))
	res, ok, derr := p.Detect(ctx, r)
	if derr != nil {
		return nil, derr
	}
	if !ok {
		res = Unknown
	}

	return &Stream{
		result: res,
		r:      io.MultiReader(bytes.NewReader(prefix), src),
	}, nil
}

// Result returns the detection outcome computed from the stream's
// prefix; it is stable for the lifetime of the Stream.
func (s *Stream) Result() Result { return s.result }

// Read implements io.Reader, delivering the buffered prefix first and
// then the remainder of the original source.
func (s *Stream) Read(p []byte) (int, error) { return s.r.Read(p) }
