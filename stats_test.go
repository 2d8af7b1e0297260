// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"errors"
	"testing"
)

func TestAnalyze(t *testing.T) {
	data := randomData(10000, 16)
	s, err := Analyze(data)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.ContainerBytes != len(enc) {
		t.Errorf("ContainerBytes = %d, want %d", s.ContainerBytes, len(enc))
	}
	if s.InputBytes != len(data) || s.Symbols != Count(data).Symbols() {
		t.Errorf("got %+v", s)
	}
	if s.TableBytes != s.ContainerBytes-headerSize-int((s.PayloadBits+7)/8) {
		t.Errorf("inconsistent sizes: %+v", s)
	}
	// 16 symbols need at most 4 bits on average.
	if bpb := s.BitsPerByte(); bpb > 4 {
		t.Errorf("BitsPerByte = %f", bpb)
	}
	if r := s.Ratio(); r >= 1 {
		t.Errorf("Ratio = %f", r)
	}
	if s.ZstdBytes <= 0 {
		t.Errorf("ZstdBytes = %d", s.ZstdBytes)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if _, err := Analyze(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}
