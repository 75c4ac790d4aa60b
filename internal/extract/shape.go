// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"strings"
)

// Shape identifies how a config source exposes its object.
type Shape int

const (
	// ShapeUnknown is the zero Shape, for sources that could not be classified.
	ShapeUnknown Shape = iota
	// ShapePlainData is JSON or JSON with comments.
	ShapePlainData
	// ShapeESMNamed is export const <Name> = { ... }.
	ShapeESMNamed
	// ShapeESMDefault is export default { ... }.
	ShapeESMDefault
	// ShapeCJSNamed is module.exports.<key> = { ... } or exports.<key> = { ... }.
	ShapeCJSNamed
	// ShapeCJSDefault is module.exports = { ... }.
	ShapeCJSDefault
)

func (s Shape) String() string {
	switch s {
	case ShapePlainData:
		return "plain-data"
	case ShapeESMNamed:
		return "esm-named"
	case ShapeESMDefault:
		return "esm-default"
	case ShapeCJSNamed:
		return "cjs-named"
	case ShapeCJSDefault:
		return "cjs-default"
	default:
		return "unknown"
	}
}

// tokenStream is a lexer with arbitrary lookahead.
type tokenStream struct {
	lex *lexer
	buf []token
}

func newTokenStream(src []byte) *tokenStream {
	return &tokenStream{lex: newLexer(src)}
}

// peek returns the token i positions ahead without consuming it.
func (s *tokenStream) peek(i int) (token, error) {
	for len(s.buf) <= i {
		if n := len(s.buf); n > 0 && s.buf[n-1].kind == tokEOF {
			return s.buf[n-1], nil
		}
		t, err := s.lex.next()
		if err != nil {
			return token{}, err
		}
		s.buf = append(s.buf, t)
	}
	return s.buf[i], nil
}

func (s *tokenStream) advance(n int) {
	if n > len(s.buf) {
		n = len(s.buf)
	}
	s.buf = s.buf[n:]
}

// matcher tries one export shape at the head of the stream and returns the
// number of tokens leading up to (not including) the opening brace.
type matcher struct {
	shape Shape
	match func(s *tokenStream) (int, bool, error)
}

// matchers are tried in a fixed order at every token position.
var matchers = []matcher{
	{ShapeESMDefault, matchESMDefault},
	{ShapeESMNamed, matchESMNamed},
	{ShapeCJSDefault, matchCJSDefault},
	{ShapeCJSNamed, matchCJSNamed},
}

// detect classifies the source and, for module shapes, leaves the stream
// positioned at the opening brace of the exported object literal.
func detect(s *tokenStream) (Shape, error) {
	first, err := s.peek(0)
	if err != nil {
		return ShapeUnknown, err
	}
	switch {
	case first.kind == tokEOF:
		return ShapeUnknown, syntaxErrorAt(s.lex.src, first.off, "config source is empty")
	case first.is(tokPunct, "{"):
		return ShapePlainData, nil
	}

	for {
		head, err := s.peek(0)
		if err != nil {
			return ShapeUnknown, err
		}
		if head.kind == tokEOF {
			return ShapeUnknown, syntaxErrorAt(s.lex.src, 0, "no exported object literal found")
		}

		for _, m := range matchers {
			n, ok, err := m.match(s)
			if err != nil {
				return ShapeUnknown, err
			}
			if ok {
				s.advance(n)
				return m.shape, nil
			}
		}
		s.advance(1)
	}
}

// expect checks that the tokens at the head of the stream are exactly want,
// followed by an opening brace. A want element of "" matches any word.
func expect(s *tokenStream, want ...string) (int, bool, error) {
	for i, w := range want {
		t, err := s.peek(i)
		if err != nil {
			return 0, false, err
		}
		switch {
		case w == "" && t.kind == tokWord && isIdentifier(t.text):
		case t.text == w && (t.kind == tokWord || t.kind == tokPunct):
		default:
			return 0, false, nil
		}
	}
	brace, err := s.peek(len(want))
	if err != nil {
		return 0, false, err
	}
	return len(want), brace.is(tokPunct, "{"), nil
}

func matchESMDefault(s *tokenStream) (int, bool, error) {
	return expect(s, "export", "default")
}

// matchESMNamed accepts export const|let|var Name [: Type] = {.
func matchESMNamed(s *tokenStream) (int, bool, error) {
	t, err := s.peek(1)
	if err != nil {
		return 0, false, err
	}
	if t.kind != tokWord || (t.text != "const" && t.text != "let" && t.text != "var") {
		return 0, false, nil
	}
	if n, ok, err := expect(s, "export", t.text, "", "="); err != nil || ok {
		return n, ok, err
	}
	return expect(s, "export", t.text, "", ":", "", "=")
}

func matchCJSDefault(s *tokenStream) (int, bool, error) {
	return expect(s, "module.exports", "=")
}

// matchCJSNamed accepts module.exports.key = {, exports.key = { and
// module.exports["key"] = {.
func matchCJSNamed(s *tokenStream) (int, bool, error) {
	head, err := s.peek(0)
	if err != nil || head.kind != tokWord {
		return 0, false, err
	}

	for _, prefix := range []string{"module.exports.", "exports."} {
		if key, ok := strings.CutPrefix(head.text, prefix); ok && isIdentifier(key) {
			return expect(s, head.text, "=")
		}
	}

	if head.text != "module.exports" {
		return 0, false, nil
	}
	open, err := s.peek(1)
	if err != nil || !open.is(tokPunct, "[") {
		return 0, false, err
	}
	key, err := s.peek(2)
	if err != nil || key.kind != tokString {
		return 0, false, err
	}
	closing, err := s.peek(3)
	if err != nil || !closing.is(tokPunct, "]") {
		return 0, false, err
	}
	eq, err := s.peek(4)
	if err != nil || !eq.is(tokPunct, "=") {
		return 0, false, err
	}
	brace, err := s.peek(5)
	if err != nil {
		return 0, false, err
	}
	return 5, brace.is(tokPunct, "{"), nil
}

// isIdentifier reports whether s is a plain JS identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r > 0x7f:
		default:
			return false
		}
	}
	return true
}
