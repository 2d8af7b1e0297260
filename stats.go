// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Stats describes how well some data compresses.
type Stats struct {
	InputBytes     int
	Symbols        int    // distinct byte values
	TableBytes     int    // size of the code table
	PayloadBits    uint64 // payload length before padding
	ContainerBytes int    // header, table and padded payload
	ZstdBytes      int    // the same input compressed with zstd, for comparison
}

// Analyze computes Stats for data without keeping the container.
func Analyze(data []byte) (*Stats, error) {
	c, err := NewCode(Count(data))
	if err != nil {
		return nil, err
	}
	nbits, err := c.BitLen(data)
	if err != nil {
		return nil, err
	}
	tn, err := c.WriteTo(io.Discard)
	if err != nil {
		return nil, err
	}

	zenc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("huffpack: zstd: %w", err)
	}
	defer zenc.Close()
	z := zenc.EncodeAll(data, nil)

	return &Stats{
		InputBytes:     len(data),
		Symbols:        c.Len(),
		TableBytes:     int(tn),
		PayloadBits:    nbits,
		ContainerBytes: headerSize + int(tn) + int((nbits+7)/8),
		ZstdBytes:      len(z),
	}, nil
}

// Ratio returns the container size as a fraction of the input size.
func (s *Stats) Ratio() float64 {
	return float64(s.ContainerBytes) / float64(s.InputBytes)
}

// BitsPerByte returns the average path length.
func (s *Stats) BitsPerByte() float64 {
	return float64(s.PayloadBits) / float64(s.InputBytes)
}
