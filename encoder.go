// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"fmt"
	"io"
)

// An Encoder writes the paths of bytes with a [Code], packed MSB-first.
// It writes only the payload; see [Compress] for the full container.
type Encoder struct {
	c  *Code
	bw *bitWriter
}

// NewEncoder returns an Encoder that writes to w.
// The caller must call [Encoder.Close] to flush the last partial byte.
func (c *Code) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{c: c, bw: newBitWriter(w)}
}

// Write encodes the bytes of p.
// It is an error if a byte of p has no path in the Encoder's Code.
// After an error, all further calls fail with the same error.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.bw.err != nil {
		return 0, e.bw.err
	}
	for i, b := range p {
		path := e.c.paths[b]
		if path.Len() == 0 {
			e.bw.err = fmt.Errorf("huffpack: byte %d has no code", b)
			return i, e.bw.err
		}
		e.bw.writePath(path)
		if e.bw.err != nil {
			return i, e.bw.err
		}
	}
	return len(p), nil
}

// Close pads the final byte with zero bits and flushes it.
// It does not close the underlying writer.
func (e *Encoder) Close() error {
	return e.bw.Close()
}

// Bits returns the number of payload bits written, not counting padding.
func (e *Encoder) Bits() uint64 {
	return e.bw.nbits
}

// Err returns the first error encountered, if any.
func (e *Encoder) Err() error { return e.bw.Err() }
