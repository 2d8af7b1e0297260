// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"fmt"
	"io"
)

// A Decoder decodes a payload written by an [Encoder].
type Decoder struct {
	t     *tree
	br    *bitReader
	nbits uint64
	base  int64 // offset of the payload in its container
	err   error
}

// NewDecoder returns a Decoder that reads exactly nbits bits of payload from r.
// Padding after the last bit is not read.
// If r is not an [io.ByteReader], the Decoder may buffer bytes past the payload.
func (c *Code) NewDecoder(r io.Reader, nbits uint64) *Decoder {
	d := &Decoder{br: newBitReader(r, nbits), nbits: nbits}
	t, err := c.trie()
	if err != nil {
		d.err = malformed(-1, "%v", err)
	}
	d.t = t
	return d
}

// ReadByte decodes the next byte.
// It returns io.EOF when all bits have been consumed at the end of a path.
// If the bits run out in the middle of a path, or a path leads nowhere,
// or the payload is shorter than the number of bits,
// it returns an error wrapping [ErrMalformed].
func (d *Decoder) ReadByte() (byte, error) {
	if d.err != nil {
		return 0, d.err
	}
	cur := d.t.root
	for depth := 0; ; depth++ {
		bit, err := d.br.readBit()
		if err != nil {
			switch {
			case err == io.EOF && depth == 0:
				d.err = io.EOF
			case err == io.EOF:
				d.err = malformed(d.offset(), "payload ends inside a code")
			case err == io.ErrUnexpectedEOF:
				d.err = malformed(d.offset(), "payload shorter than %d bits", d.nbits)
			default:
				d.err = fmt.Errorf("huffpack: reading payload: %w", err)
			}
			return 0, d.err
		}
		if cur = d.t.child(cur, bit); cur == none {
			d.err = malformed(d.offset(), "bit %d leads outside the code tree", d.consumed()-1)
			return 0, d.err
		}
		if n := &d.t.nodes[cur]; n.leaf {
			return n.sym, nil
		}
	}
}

// Read decodes up to len(p) bytes into p.
func (d *Decoder) Read(p []byte) (int, error) {
	for i := range p {
		b, err := d.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

// consumed returns the number of payload bits read.
func (d *Decoder) consumed() uint64 {
	return d.nbits - d.br.remaining
}

func (d *Decoder) offset() int64 {
	return d.base + int64(d.consumed()/8)
}
