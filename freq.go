// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

// Frequencies holds the number of occurrences of each byte value.
// A zero entry means the byte did not occur.
// A Frequencies is an [io.Writer]: every byte written to it is counted.
type Frequencies [256]uint64

// Count returns the frequencies of the bytes in data.
func Count(data []byte) *Frequencies {
	var f Frequencies
	f.Write(data)
	return &f
}

// Write adds the bytes of p to the counts. It never fails.
func (f *Frequencies) Write(p []byte) (int, error) {
	for _, b := range p {
		f[b]++
	}
	return len(p), nil
}

// Symbols returns the number of distinct byte values with a nonzero count.
func (f *Frequencies) Symbols() int {
	n := 0
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}

// Total returns the number of bytes counted.
func (f *Frequencies) Total() uint64 {
	var t uint64
	for _, c := range f {
		t += c
	}
	return t
}
