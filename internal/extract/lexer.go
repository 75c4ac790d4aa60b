// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokPunct
	tokWord
	tokString
)

// token is one lexical unit of module source. For tokString, text holds the
// decoded value; otherwise it is the raw source text.
type token struct {
	kind tokenKind
	text string
	off  int

	// interpolated marks a template literal containing ${...}.
	interpolated bool
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

// lexer splits JS-like source into punctuation, words and strings. Comments
// and whitespace are skipped, but only outside string literals, so a URL such
// as "https://host/path" is never read as a line comment.
type lexer struct {
	src []byte
	pos int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src}
}

func (l *lexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, off: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '"' || c == '\'':
		s, err := l.quoted(c)
		if err != nil {
			return token{}, err
		}
		return token{kind: tokString, text: s, off: start}, nil
	case c == '`':
		s, interpolated, err := l.template()
		if err != nil {
			return token{}, err
		}
		return token{kind: tokString, text: s, off: start, interpolated: interpolated}, nil
	case l.atWord():
		for l.pos < len(l.src) && l.atWord() {
			_, size := utf8.DecodeRune(l.src[l.pos:])
			l.pos += size
		}
		return token{kind: tokWord, text: string(l.src[start:l.pos]), off: start}, nil
	default:
		_, size := utf8.DecodeRune(l.src[l.pos:])
		l.pos += size
		return token{kind: tokPunct, text: string(l.src[start:l.pos]), off: start}, nil
	}
}

// atWord reports whether the rune at pos may be part of a bare word: an
// identifier, a keyword, a number, or a loosely written key such as
// "@scope/pkg" or "my-key". A slash that opens a comment ends the word.
func (l *lexer) atWord() bool {
	r, _ := utf8.DecodeRune(l.src[l.pos:])
	switch r {
	case '_', '$', '-', '.', '@', '+':
		return true
	case '/':
		return !l.atComment()
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *lexer) atComment() bool {
	if l.pos+1 >= len(l.src) || l.src[l.pos] != '/' {
		return false
	}
	return l.src[l.pos+1] == '/' || l.src[l.pos+1] == '*'
}

func (l *lexer) skipSpaceAndComments() error {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRune(l.src[l.pos:])
		switch {
		case r == '\uFEFF' || unicode.IsSpace(r):
			l.pos += size
		case l.atComment() && l.src[l.pos+1] == '/':
			end := strings.IndexByte(string(l.src[l.pos:]), '\n')
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end + 1
			}
		case l.atComment():
			end := strings.Index(string(l.src[l.pos+2:]), "*/")
			if end < 0 {
				return syntaxErrorAt(l.src, l.pos, "unterminated block comment")
			}
			l.pos += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

// quoted decodes a single- or double-quoted string literal starting at pos.
func (l *lexer) quoted(quote byte) (string, error) {
	start := l.pos
	l.pos++

	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return "", syntaxErrorAt(l.src, start, "unterminated string literal")
		}
		c := l.src[l.pos]
		switch c {
		case quote:
			l.pos++
			return b.String(), nil
		case '\n', '\r':
			return "", syntaxErrorAt(l.src, start, "unterminated string literal")
		case '\\':
			if err := l.escape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
}

// template decodes a backtick literal. Substitutions are not evaluated, the
// literal is only flagged so the reducer can reject it.
func (l *lexer) template() (string, bool, error) {
	start := l.pos
	l.pos++

	var b strings.Builder
	interpolated := false
	for {
		if l.pos >= len(l.src) {
			return "", false, syntaxErrorAt(l.src, start, "unterminated template literal")
		}
		c := l.src[l.pos]
		switch {
		case c == '`':
			l.pos++
			return b.String(), interpolated, nil
		case c == '\\':
			if err := l.escape(&b); err != nil {
				return "", false, err
			}
		case c == '$' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '{':
			interpolated = true
			b.WriteByte(c)
			l.pos++
		case c == '\r':
			// CRLF and lone CR both read as LF inside templates.
			b.WriteByte('\n')
			l.pos++
			if l.pos < len(l.src) && l.src[l.pos] == '\n' {
				l.pos++
			}
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
}

var simpleEscapes = map[byte]string{
	'n': "\n", 'r': "\r", 't': "\t", 'b': "\b", 'f': "\f", 'v': "\v",
	'\\': "\\", '\'': "'", '"': "\"", '`': "`", '/': "/",
}

// escape decodes one backslash sequence at pos into b.
func (l *lexer) escape(b *strings.Builder) error {
	start := l.pos
	l.pos++
	if l.pos >= len(l.src) {
		return syntaxErrorAt(l.src, start, "unterminated escape sequence")
	}

	c := l.src[l.pos]
	if s, ok := simpleEscapes[c]; ok {
		b.WriteString(s)
		l.pos++
		return nil
	}

	switch c {
	case '0':
		if l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
			return syntaxErrorAt(l.src, start, "octal escape sequences are not supported")
		}
		b.WriteByte(0)
		l.pos++
	case 'x':
		v, err := l.hexDigits(start, l.pos+1, 2)
		if err != nil {
			return err
		}
		b.WriteRune(rune(v))
		l.pos += 3
	case 'u':
		r, err := l.unicodeEscape(start)
		if err != nil {
			return err
		}
		b.WriteRune(r)
	case '\n':
		l.pos++
	case '\r':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
		}
	default:
		if isDigit(c) {
			return syntaxErrorAt(l.src, start, "octal escape sequences are not supported")
		}
		r, size := utf8.DecodeRune(l.src[l.pos:])
		if r != '\u2028' && r != '\u2029' {
			b.WriteRune(r)
		}
		l.pos += size
	}
	return nil
}

// unicodeEscape decodes \uXXXX (joining surrogate pairs) or \u{X...}.
// On entry pos is at the 'u'.
func (l *lexer) unicodeEscape(start int) (rune, error) {
	if l.pos+1 < len(l.src) && l.src[l.pos+1] == '{' {
		end := strings.IndexByte(string(l.src[l.pos+2:]), '}')
		if end < 1 || end > 6 {
			return 0, syntaxErrorAt(l.src, start, "malformed unicode escape")
		}
		v, err := l.hexDigits(start, l.pos+2, end)
		if err != nil {
			return 0, err
		}
		if v > unicode.MaxRune {
			return 0, syntaxErrorAt(l.src, start, "unicode escape out of range")
		}
		l.pos += 2 + end + 1
		return rune(v), nil
	}

	v, err := l.hexDigits(start, l.pos+1, 4)
	if err != nil {
		return 0, err
	}
	l.pos += 5
	r := rune(v)

	if utf16.IsSurrogate(r) && l.pos+5 < len(l.src) && l.src[l.pos] == '\\' && l.src[l.pos+1] == 'u' {
		if lo, err := l.hexDigits(start, l.pos+2, 4); err == nil {
			if pair := utf16.DecodeRune(r, rune(lo)); pair != unicode.ReplacementChar {
				l.pos += 6
				return pair, nil
			}
		}
	}
	return r, nil
}

func (l *lexer) hexDigits(start, from, n int) (uint64, error) {
	if from+n > len(l.src) {
		return 0, syntaxErrorAt(l.src, start, "malformed escape sequence")
	}
	v, err := strconv.ParseUint(string(l.src[from:from+n]), 16, 32)
	if err != nil {
		return 0, syntaxErrorAt(l.src, start, "malformed escape sequence")
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
