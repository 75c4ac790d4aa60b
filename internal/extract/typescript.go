// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"github.com/evanw/esbuild/pkg/api"
)

// StripTypes transpiles TypeScript to plain ESNext JavaScript, removing type
// annotations, type-only imports and declarations. The module format is left
// as written. Nothing is bundled or executed.
func StripTypes(name string, source []byte) ([]byte, error) {
	result := api.Transform(string(source), api.TransformOptions{
		Loader:     api.LoaderTS,
		Target:     api.ESNext,
		Charset:    api.CharsetUTF8,
		Sourcefile: name,
		LogLevel:   api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		se := &SyntaxError{Detail: "typescript: " + msg.Text}
		if loc := msg.Location; loc != nil {
			se.Line = loc.Line
			se.Column = loc.Column + 1
			se.Excerpt = excerpt(loc.LineText)
		}
		return nil, se
	}

	return result.Code, nil
}
