// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// maxDepth bounds nesting of objects and arrays.
const maxDepth = 256

// reducer turns an object literal into JSON-compatible Go values:
// map[string]any, []any, string, float64, bool and nil.
type reducer struct {
	s     *tokenStream
	src   []byte
	depth int
}

func (r *reducer) take() (token, error) {
	t, err := r.s.peek(0)
	if err != nil {
		return token{}, err
	}
	r.s.advance(1)
	return t, nil
}

func (r *reducer) fail(t token, format string, args ...any) error {
	return syntaxErrorAt(r.src, t.off, format, args...)
}

func (r *reducer) object() (map[string]any, error) {
	open, err := r.take()
	if err != nil {
		return nil, err
	}
	if !open.is(tokPunct, "{") {
		return nil, r.fail(open, "expected '{', found %s", describe(open))
	}
	if err := r.enter(open); err != nil {
		return nil, err
	}
	defer r.leave()

	obj := make(map[string]any)
	for {
		t, err := r.take()
		if err != nil {
			return nil, err
		}
		if t.is(tokPunct, "}") {
			return obj, nil
		}

		key, err := r.key(t)
		if err != nil {
			return nil, err
		}
		colon, err := r.take()
		if err != nil {
			return nil, err
		}
		if !colon.is(tokPunct, ":") {
			return nil, r.fail(colon, "expected ':' after key %q, found %s", key, describe(colon))
		}
		v, err := r.value()
		if err != nil {
			return nil, err
		}
		obj[key] = v

		sep, err := r.take()
		if err != nil {
			return nil, err
		}
		switch {
		case sep.is(tokPunct, ","):
		case sep.is(tokPunct, "}"):
			return obj, nil
		case sep.kind == tokEOF:
			return nil, r.fail(sep, "unexpected end of input, unbalanced braces")
		default:
			return nil, r.fail(sep, "expected ',' or '}' after value of %q, found %s", key, describe(sep))
		}
	}
}

func (r *reducer) array() ([]any, error) {
	open, err := r.take()
	if err != nil {
		return nil, err
	}
	if err := r.enter(open); err != nil {
		return nil, err
	}
	defer r.leave()

	arr := make([]any, 0)
	for {
		t, err := r.s.peek(0)
		if err != nil {
			return nil, err
		}
		if t.is(tokPunct, "]") {
			r.s.advance(1)
			return arr, nil
		}

		v, err := r.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		sep, err := r.take()
		if err != nil {
			return nil, err
		}
		switch {
		case sep.is(tokPunct, ","):
		case sep.is(tokPunct, "]"):
			return arr, nil
		case sep.kind == tokEOF:
			return nil, r.fail(sep, "unexpected end of input, unbalanced brackets")
		default:
			return nil, r.fail(sep, "expected ',' or ']' in array, found %s", describe(sep))
		}
	}
}

func (r *reducer) value() (any, error) {
	t, err := r.s.peek(0)
	if err != nil {
		return nil, err
	}

	switch {
	case t.is(tokPunct, "{"):
		return r.object()
	case t.is(tokPunct, "["):
		return r.array()
	case t.kind == tokString:
		r.s.advance(1)
		if t.interpolated {
			return nil, r.fail(t, "template literal substitutions are not supported")
		}
		return t.text, nil
	case t.kind == tokWord:
		r.s.advance(1)
		switch t.text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "null":
			return nil, nil
		}
		if f, ok := parseNumber(t.text); ok {
			return f, nil
		}
		return nil, r.fail(t, "unsupported value %q: only literals can be extracted", t.text)
	case t.kind == tokEOF:
		return nil, r.fail(t, "unexpected end of input, unbalanced braces")
	default:
		return nil, r.fail(t, "unexpected %s", describe(t))
	}
}

var bareKey = regexp.MustCompile(`^[\p{L}\p{N}_$\-./@]+$`)

func (r *reducer) key(t token) (string, error) {
	switch {
	case t.kind == tokString && !t.interpolated:
		return t.text, nil
	case t.kind == tokWord && strings.HasPrefix(t.text, "..."):
		return "", r.fail(t, "spread elements are not supported")
	case t.kind == tokWord && bareKey.MatchString(t.text):
		return t.text, nil
	case t.is(tokPunct, "["):
		return "", r.fail(t, "computed keys are not supported")
	case t.kind == tokEOF:
		return "", r.fail(t, "unexpected end of input, unbalanced braces")
	default:
		return "", r.fail(t, "invalid object key %s", describe(t))
	}
}

// trailer checks what follows the exported literal. Only a statement end or
// the start of another statement is accepted, so member access, calls and
// operators applied to the literal are rejected.
func (r *reducer) trailer() error {
	t, err := r.s.peek(0)
	if err != nil {
		return err
	}
	switch {
	case t.kind == tokEOF, t.is(tokPunct, ";"):
		return nil
	case t.kind == tokWord && isIdentifier(firstSegment(t.text)):
		return nil
	default:
		return r.fail(t, "unexpected %s after object literal", describe(t))
	}
}

func (r *reducer) enter(t token) error {
	r.depth++
	if r.depth > maxDepth {
		return r.fail(t, "nesting deeper than %d levels", maxDepth)
	}
	return nil
}

func (r *reducer) leave() {
	r.depth--
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:(?:0|[1-9][0-9]*)(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// parseNumber accepts JS numeric literals: decimals with optional sign,
// fraction, exponent and separators, and 0x/0o/0b integers.
func parseNumber(s string) (float64, bool) {
	if strings.Contains(s, "__") || strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") {
		return 0, false
	}

	sign := 1.0
	body := s
	switch {
	case strings.HasPrefix(body, "-"):
		sign, body = -1, body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	if len(body) > 2 && body[0] == '0' && strings.ContainsRune("xXoObB", rune(body[1])) {
		v, err := strconv.ParseUint(body, 0, 64)
		if err != nil {
			return 0, false
		}
		return sign * float64(v), true
	}

	plain := strings.ReplaceAll(body, "_", "")
	if !decimalLiteral.MatchString(plain) {
		return 0, false
	}
	f, err := strconv.ParseFloat(plain, 64)
	if err != nil {
		return 0, false
	}
	return sign * f, true
}

func firstSegment(word string) string {
	if i := strings.IndexByte(word, '.'); i >= 0 {
		return word[:i]
	}
	return word
}

func describe(t token) string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokString:
		return "string " + strconv.Quote(t.text)
	default:
		return "'" + t.text + "'"
	}
}
