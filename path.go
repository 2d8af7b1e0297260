// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"fmt"
	"strings"
)

// MaxCodeLen is the longest path, in bits, that a container can describe.
const MaxCodeLen = 255

// A Path is the route from the root of a Huffman tree to a leaf.
// A 1 bit descends left and a 0 bit descends right.
// The zero Path is empty.
type Path struct {
	// bits holds the path packed MSB-first; bits past n are zero.
	bits [(MaxCodeLen + 7) / 8]byte
	n    int
}

// ParsePath parses a string of '0' and '1' characters.
func ParsePath(s string) (Path, error) {
	var p Path
	for i := 0; i < len(s); i++ {
		var b byte
		switch s[i] {
		case '0':
		case '1':
			b = 1
		default:
			return Path{}, fmt.Errorf("huffpack.ParsePath: bad character %q at %d", s[i], i)
		}
		var err error
		if p, err = p.append(b); err != nil {
			return Path{}, err
		}
	}
	return p, nil
}

// Len returns the number of bits in p.
func (p Path) Len() int { return p.n }

// Bit returns the i'th bit of p, counting from the root.
func (p Path) Bit(i int) byte {
	if i < 0 || i >= p.n {
		panic("huffpack: Path.Bit index out of range")
	}
	return (p.bits[i/8] >> (7 - uint(i%8))) & 1
}

// Bytes returns the bits of p packed MSB-first into ceil(Len/8) bytes,
// with the last byte padded with zero bits.
func (p Path) Bytes() []byte {
	return append([]byte(nil), p.bits[:(p.n+7)/8]...)
}

// HasPrefix reports whether q is a prefix of p.
func (p Path) HasPrefix(q Path) bool {
	if q.n > p.n {
		return false
	}
	full := q.n / 8
	if string(p.bits[:full]) != string(q.bits[:full]) {
		return false
	}
	if r := q.n % 8; r != 0 {
		mask := byte(0xff) << (8 - uint(r))
		return p.bits[full]&mask == q.bits[full]
	}
	return true
}

func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(p.n)
	for i := range p.n {
		sb.WriteByte('0' + p.Bit(i))
	}
	return sb.String()
}

// append returns p with bit b added at the end.
func (p Path) append(b byte) (Path, error) {
	if p.n >= MaxCodeLen {
		return Path{}, ErrCodeTooLong
	}
	if b != 0 {
		p.bits[p.n/8] |= 0x80 >> uint(p.n%8)
	}
	p.n++
	return p, nil
}
