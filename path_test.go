// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPath(t *testing.T) {
	for _, test := range []struct {
		in    string
		bytes []byte
	}{
		{"", nil},
		{"1", []byte{0x80}},
		{"0", []byte{0x00}},
		{"10110", []byte{0xb0}},
		{"11111111", []byte{0xff}},
		{"101010101", []byte{0xaa, 0x80}},
		{"0000000000000001", []byte{0x00, 0x01}},
	} {
		p, err := ParsePath(test.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.String(); got != test.in {
			t.Errorf("%q: String = %q", test.in, got)
		}
		if got := p.Len(); got != len(test.in) {
			t.Errorf("%q: Len = %d", test.in, got)
		}
		if got := p.Bytes(); !bytes.Equal(got, test.bytes) {
			t.Errorf("%q: Bytes = %x, want %x", test.in, got, test.bytes)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	if _, err := ParsePath("10x"); err == nil {
		t.Error("bad character: got nil error")
	}
	if _, err := ParsePath(strings.Repeat("1", MaxCodeLen)); err != nil {
		t.Errorf("longest path: %v", err)
	}
	if _, err := ParsePath(strings.Repeat("1", MaxCodeLen+1)); !errors.Is(err, ErrCodeTooLong) {
		t.Errorf("too long: got %v, want ErrCodeTooLong", err)
	}
}

func TestHasPrefix(t *testing.T) {
	for _, test := range []struct {
		p, q string
		want bool
	}{
		{"101", "", true},
		{"101", "1", true},
		{"101", "10", true},
		{"101", "101", true},
		{"101", "11", false},
		{"101", "1010", false},
		{"1111111100", "111111110", true},
		{"1111111100", "111111111", false},
		{"1111111100", "11111111", true},
	} {
		p := mustPath(t, test.p)
		q := mustPath(t, test.q)
		if got := p.HasPrefix(q); got != test.want {
			t.Errorf("%q.HasPrefix(%q) = %t, want %t", test.p, test.q, got, test.want)
		}
	}
}
