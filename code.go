// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// A Code is a mapping from byte values to paths.
// Bytes that did not occur when the Code was built have an empty path.
type Code struct {
	paths [256]Path
}

// NewCode constructs a Huffman [Code] for the bytes with a nonzero count in f.
// It returns [ErrEmptyInput] if there are none.
//
// Nodes of equal frequency are merged in a fixed order (leaves by byte value,
// then merged nodes in the order they were created), so the same frequencies
// always produce the same Code.
func NewCode(f *Frequencies) (*Code, error) {
	t, err := buildTree(f)
	if err != nil {
		return nil, err
	}
	paths, err := t.paths()
	if err != nil {
		return nil, err
	}
	return &Code{paths: *paths}, nil
}

// Path returns the path for s, and whether s has one.
func (c *Code) Path(s byte) (Path, bool) {
	p := c.paths[s]
	return p, p.Len() > 0
}

// Len returns the number of bytes that have a path.
func (c *Code) Len() int {
	n := 0
	for _, p := range c.paths {
		if p.Len() > 0 {
			n++
		}
	}
	return n
}

// BitLen returns the number of bits needed to encode data.
// It is an error if some byte of data has no path.
func (c *Code) BitLen(data []byte) (uint64, error) {
	var n uint64
	for i, b := range data {
		l := c.paths[b].Len()
		if l == 0 {
			return 0, fmt.Errorf("huffpack: byte %d at offset %d has no code", b, i)
		}
		n += uint64(l)
	}
	return n, nil
}

// WriteTo writes the code table: for each byte value in order,
// the path length in one byte followed by the path packed into
// ceil(length/8) bytes, MSB-first.
func (c *Code) WriteTo(w io.Writer) (int64, error) {
	bw := newBitWriter(w)
	var n int64
	for _, p := range c.paths {
		bw.writeByte(byte(p.Len()))
		bw.writePath(p)
		bw.align()
		n += 1 + int64(p.Len()+7)/8
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadCode reads a code table written by [Code.WriteTo].
// Padding bits after each path are ignored.
// It returns an error wrapping [ErrMalformed] if the table is truncated,
// describes no paths, or is not prefix-free.
// If r is not an [io.ByteReader], ReadCode may read past the end of the table.
func ReadCode(r io.Reader) (*Code, error) {
	c, _, err := readCode(r, 0)
	return c, err
}

// readCode reads a code table starting at offset off of the container
// and returns the number of bytes it consumed.
func readCode(r io.Reader, off int64) (*Code, int64, error) {
	c := &Code{}
	start := off
	br := bitio.NewReader(r)
	for s := range c.paths {
		n, err := br.ReadBits(8)
		if err != nil {
			return nil, off - start, readError(err, off, "code table")
		}
		off++
		var p Path
		for p.n < int(n) {
			k := min(int(n)-p.n, 8)
			v, err := br.ReadBits(uint8(k))
			if err != nil {
				return nil, off - start, readError(err, off, "code table")
			}
			p.bits[p.n/8] = byte(v) << (8 - k)
			p.n += k
		}
		br.Align()
		off += int64(p.n+7) / 8
		c.paths[s] = p
	}
	if _, err := c.trie(); err != nil {
		return nil, off - start, malformed(start, "%v", err)
	}
	return c, off - start, nil
}

// readError reports a short read at off as a malformed container.
func readError(err error, off int64, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return malformed(off, "%s truncated", what)
	}
	return fmt.Errorf("huffpack: reading %s: %w", what, err)
}

// readFull is io.ReadFull, with a short read reported as a malformed container.
func readFull(r io.Reader, buf []byte, off int64, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return readError(err, off, what)
	}
	return nil
}

// trie rebuilds a decoding tree from the paths.
func (c *Code) trie() (*tree, error) {
	t := newTrie()
	n := 0
	for s, p := range c.paths {
		if p.Len() == 0 {
			continue
		}
		if err := t.insert(p, byte(s)); err != nil {
			return nil, fmt.Errorf("byte %d: %w", s, err)
		}
		n++
	}
	if n == 0 {
		return nil, errors.New("no codes")
	}
	return t, nil
}

// WriteTable writes one line for each byte that has a path,
// in increasing byte order, of the form "97: 101".
func (c *Code) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for s, p := range c.paths {
		if p.Len() == 0 {
			continue
		}
		fmt.Fprintf(bw, "%d: %s\n", s, p)
	}
	return bw.Flush()
}
