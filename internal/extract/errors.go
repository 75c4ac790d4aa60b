// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfigFile is returned when a config source cannot be reduced
// to a plain JSON object.
var ErrInvalidConfigFile = errors.New("invalid config file")

// SyntaxError describes why and where extraction stopped. Line and Column
// are 1-based; both are zero when the position is unknown.
type SyntaxError struct {
	Detail  string
	Line    int
	Column  int
	Excerpt string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidConfigFile, e.Detail)
	}
	return fmt.Sprintf("%s: %s at %d:%d", ErrInvalidConfigFile, e.Detail, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidConfigFile
}

const maxExcerpt = 120

// syntaxErrorAt builds a SyntaxError for byte offset off in src.
func syntaxErrorAt(src []byte, off int, format string, args ...any) *SyntaxError {
	if off > len(src) {
		off = len(src)
	}
	line := 1 + strings.Count(string(src[:off]), "\n")
	start := strings.LastIndexByte(string(src[:off]), '\n') + 1
	end := len(src)
	if i := strings.IndexByte(string(src[off:]), '\n'); i >= 0 {
		end = off + i
	}

	return &SyntaxError{
		Detail:  fmt.Sprintf(format, args...),
		Line:    line,
		Column:  len([]rune(string(src[start:off]))) + 1,
		Excerpt: excerpt(string(src[start:end])),
	}
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxExcerpt {
		return string(r[:maxExcerpt]) + "…"
	}
	return s
}
