// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// A container is laid out as:
//
//	8 bytes    payload length in bits, little-endian
//	table      see [Code.WriteTo]
//	payload    paths of the original bytes, MSB-first, zero-padded
const headerSize = 8

// An Option configures [Compress] and [Decompress].
type Option func(*options)

type options struct {
	log       logrus.FieldLogger
	maxOutput int64 // negative means no limit
}

// WithLogger sets a logger that receives debug messages about
// table and payload sizes. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithMaxOutput makes [Decompress] fail with [ErrTooLarge] before decoding
// a container that could expand to more than n bytes.
func WithMaxOutput(n int64) Option {
	return func(o *options) {
		o.maxOutput = n
	}
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func newOptions(opts []Option) *options {
	o := &options{log: discardLogger, maxOutput: -1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Compress writes a container holding data to w.
// It returns [ErrEmptyInput] without writing anything if data is empty.
func Compress(w io.Writer, data []byte, opts ...Option) error {
	o := newOptions(opts)
	c, err := NewCode(Count(data))
	if err != nil {
		return err
	}
	nbits, err := c.BitLen(data)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var hdr [headerSize]byte
	binary.LittleEndian.PutUint64(hdr[:], nbits)
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("huffpack: writing header: %w", err)
	}
	tn, err := c.WriteTo(bw)
	if err != nil {
		return fmt.Errorf("huffpack: writing code table: %w", err)
	}
	o.log.Debugf("code table: %d symbols, %d bytes", c.Len(), tn)

	enc := c.NewEncoder(bw)
	if _, err := enc.Write(data); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("huffpack: writing payload: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("huffpack: writing container: %w", err)
	}
	o.log.Debugf("payload: %d bits in %d bytes", nbits, (nbits+7)/8)
	return nil
}

// Decompress reads a container from r and writes the original bytes to w.
// It returns an error wrapping [ErrMalformed] if the container is truncated
// or inconsistent. Bytes after the last payload byte are ignored.
// Output written before an error is detected is not retracted;
// use [Decode] to avoid partial output.
func Decompress(w io.Writer, r io.Reader, opts ...Option) error {
	o := newOptions(opts)
	br := bufio.NewReader(r)
	var hdr [headerSize]byte
	if err := readFull(br, hdr[:], 0, "header"); err != nil {
		return err
	}
	nbits := binary.LittleEndian.Uint64(hdr[:])
	c, tn, err := readCode(br, headerSize)
	if err != nil {
		return err
	}
	o.log.Debugf("code table: %d symbols, %d bytes; payload: %d bits", c.Len(), tn, nbits)
	if o.maxOutput >= 0 {
		if most := maxSymbols(c, nbits); most > uint64(o.maxOutput) {
			return fmt.Errorf("%w: up to %d bytes, limit %d", ErrTooLarge, most, o.maxOutput)
		}
	}

	d := c.NewDecoder(br, nbits)
	d.base = headerSize + tn
	bw := bufio.NewWriter(w)
	var n int64
	for {
		b, err := d.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		bw.WriteByte(b)
		n++
	}
	end := d.base + int64((nbits+7)/8)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("huffpack: writing output: %w", err)
	}
	o.log.Debugf("decoded %d bytes from %d bytes", n, end)
	return nil
}

// maxSymbols returns the largest number of bytes that nbits can decode to.
func maxSymbols(c *Code, nbits uint64) uint64 {
	shortest := MaxCodeLen
	for _, p := range c.paths {
		if l := p.Len(); l > 0 && l < shortest {
			shortest = l
		}
	}
	return nbits / uint64(shortest)
}

// Encode returns a container holding data.
func Encode(data []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(&buf, data, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode returns the bytes held in container.
// On error it returns no data.
func Decode(container []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(&buf, bytes.NewReader(container), opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
