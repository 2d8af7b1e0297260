// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no symbols to build a code from.
	ErrEmptyInput = errors.New("huffpack: no data")

	// ErrCodeTooLong is returned when a path would not fit the one-byte length field.
	ErrCodeTooLong = errors.New("huffpack: code longer than 255 bits")

	// ErrMalformed is the error underlying every [FormatError].
	ErrMalformed = errors.New("huffpack: malformed container")

	// ErrTooLarge is returned when a container could decode to more
	// bytes than allowed by [WithMaxOutput].
	ErrTooLarge = errors.New("huffpack: output too large")
)

// A FormatError describes a container that cannot be decoded.
// Offset is the byte offset in the container where the problem was found,
// or -1 if it is not known.
type FormatError struct {
	Offset int64
	Reason string
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("huffpack: malformed container: %s", e.Reason)
	}
	return fmt.Sprintf("huffpack: malformed container at offset %d: %s", e.Offset, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrMalformed }

func malformed(off int64, format string, args ...any) error {
	return &FormatError{Offset: off, Reason: fmt.Sprintf(format, args...)}
}
