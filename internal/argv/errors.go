// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package argv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProcessVariable is returned when a flagged token carrying a
	// delimiter does not split into exactly one key and one value
	// (e.g. "--test=foo=bar" with delimiter "=").
	ErrInvalidProcessVariable = errors.New("invalid process variable")

	// ErrEmptyFlag is returned when Extract is called with an empty flag
	// prefix, which would mark every token as a key.
	ErrEmptyFlag = errors.New("argv flag prefix is empty")
)

// InvalidVariableError carries the raw token that failed to split.
// It matches [ErrInvalidProcessVariable] via errors.Is.
type InvalidVariableError struct {
	Token     string
	Flag      string
	Delimiter string
}

func (e *InvalidVariableError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidProcessVariable, e.Token)
}

func (e *InvalidVariableError) Unwrap() error {
	return ErrInvalidProcessVariable
}
