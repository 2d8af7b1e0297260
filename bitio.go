// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"io"

	"github.com/icza/bitio"
)

// A bitWriter writes bits MSB-first to an [io.Writer].
// Write errors are stored and reported by [bitWriter.Close]
// or [bitWriter.Err].
// Closing a bitWriter on a non-byte boundary pads the last byte
// with zero bits on the low side.
type bitWriter struct {
	err   error
	w     *bitio.Writer
	nbits uint64 // number of bits written so far
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: bitio.NewWriter(w)}
}

// writePath writes the bits of p, first bit first.
// TODO: write up to 64 bits per WriteBits call instead of one byte.
func (w *bitWriter) writePath(p Path) {
	if w.err != nil {
		return
	}
	n := p.Len()
	for i := 0; n > 0; i++ {
		k := min(n, 8)
		if w.err = w.w.WriteBits(uint64(p.bits[i]>>uint(8-k)), uint8(k)); w.err != nil {
			return
		}
		n -= k
	}
	w.nbits += uint64(p.Len())
}

// writeByte writes the 8 bits of b.
func (w *bitWriter) writeByte(b byte) {
	if w.err != nil {
		return
	}
	w.err = w.w.WriteBits(uint64(b), 8)
}

// align pads the current byte with zero bits.
func (w *bitWriter) align() {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Align()
}

func (w *bitWriter) Close() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Close()
	return w.err
}

func (w *bitWriter) Err() error {
	return w.err
}

// A bitReader reads at most remaining bits, MSB-first, from an [io.Reader].
// If the reader is not an [io.ByteReader] it is buffered, so bytes past
// the last one consumed may have been read from it.
type bitReader struct {
	err       error
	r         *bitio.Reader
	remaining uint64 // number of bits left to read
}

func newBitReader(r io.Reader, n uint64) *bitReader {
	return &bitReader{r: bitio.NewReader(r), remaining: n}
}

// readBit returns the next bit.
// Reading past the bit budget is io.EOF; running out of input
// before the budget is spent is io.ErrUnexpectedEOF.
func (r *bitReader) readBit() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.remaining == 0 {
		return 0, io.EOF
	}
	b, err := r.r.ReadBool()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		r.err = err
		return 0, err
	}
	r.remaining--
	if b {
		return 1, nil
	}
	return 0, nil
}
