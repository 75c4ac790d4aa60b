// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package extract turns a configuration source into a plain key/value object
// without executing it.
//
// A source is either data (JSON, or JSON with comments and trailing commas)
// or a module exporting one object literal in one of four shapes:
//
//	export const Config = { ... }     // ESM named
//	export default { ... }            // ESM default
//	module.exports.config = { ... }   // CJS named
//	module.exports = { ... }          // CJS default
//
// TypeScript sources are transpiled to plain JavaScript first. The literal is
// then reduced by a small lexer and recursive-descent reducer that accepts
// only strings, numbers, booleans, null, objects and arrays. Identifiers,
// calls, spreads and template substitutions are rejected, never evaluated.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// Result is an extracted configuration object together with the shape it
// was found in.
type Result struct {
	Shape  Shape
	Object map[string]any
}

// Extract reduces source to a configuration object. source is treated as
// JavaScript or data; use [ExtractFile] for TypeScript.
func Extract(source []byte) (map[string]any, error) {
	res, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return res.Object, nil
}

// ExtractFile is like [Extract] but picks the source language from the file
// name's extension.
func ExtractFile(name string, source []byte) (map[string]any, error) {
	res, err := ParseFile(name, source)
	if err != nil {
		return nil, err
	}
	return res.Object, nil
}

// ParseFile transpiles .ts sources to JavaScript and then calls [Parse].
func ParseFile(name string, source []byte) (*Result, error) {
	if strings.EqualFold(filepath.Ext(name), ".ts") {
		js, err := StripTypes(name, source)
		if err != nil {
			return nil, err
		}
		source = js
	}
	return Parse(source)
}

// Parse detects the source shape and extracts its object.
func Parse(source []byte) (*Result, error) {
	s := newTokenStream(source)
	shape, err := detect(s)
	if err != nil {
		return nil, err
	}

	if shape == ShapePlainData {
		obj, err := parseData(source)
		if err != nil {
			return nil, err
		}
		return &Result{Shape: shape, Object: obj}, nil
	}

	r := &reducer{s: s, src: source}
	obj, err := r.object()
	if err != nil {
		return nil, err
	}
	if err := r.trailer(); err != nil {
		return nil, err
	}
	return &Result{Shape: shape, Object: obj}, nil
}

// parseData strips JSONC comments and trailing commas, then decodes strictly.
func parseData(source []byte) (map[string]any, error) {
	source = bytes.TrimPrefix(source, []byte("\xEF\xBB\xBF"))

	var obj map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(source), &obj); err != nil {
		se := &SyntaxError{Detail: err.Error()}
		var jerr *json.SyntaxError
		if errors.As(err, &jerr) {
			se = syntaxErrorAt(source, int(jerr.Offset), "%s", err.Error())
		}
		return nil, se
	}
	if obj == nil {
		return nil, &SyntaxError{Detail: "top-level value is not an object"}
	}
	return obj, nil
}
