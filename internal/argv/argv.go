// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package argv extracts flagged key/value variables from a list of
// command-line tokens.
//
// Two token grammars are supported, selected by the delimiter:
//
//	--config test     (delimiter empty or whitespace: value is the next token)
//	--config=test     (delimiter "=": key and value share one token)
//
// Extraction is a pure function over the given tokens. Nothing is cached
// between calls.
package argv

import (
	"strings"
)

// Map holds the variables extracted from one token list.
type Map map[string]string

// Get returns the value extracted for key. Empty values are reported as
// absent.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Extract scans tokens left to right and collects every token starting with
// flag. The first malformed token aborts extraction with an
// [*InvalidVariableError]; no partial map is returned.
//
// When a key repeats, the last occurrence wins.
func Extract(tokens []string, flag, delimiter string) (Map, error) {
	if flag == "" {
		return nil, ErrEmptyFlag
	}

	positional := strings.TrimSpace(delimiter) == ""
	result := make(Map)

	for i, token := range tokens {
		if !strings.HasPrefix(token, flag) {
			continue
		}
		body := strings.TrimPrefix(token, flag)

		if positional {
			if i+1 < len(tokens) {
				result[body] = tokens[i+1]
			}
			continue
		}

		parts := strings.Split(body, delimiter)
		if len(parts) != 2 {
			return nil, &InvalidVariableError{Token: token, Flag: flag, Delimiter: delimiter}
		}
		result[parts[0]] = parts[1]
	}

	return result, nil
}
