// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/nilswg/use-config/internal/store"
)

// Extensions lists the candidate file extensions in probe order. The first
// existing file wins, so config.<name>.json shadows config.<name>.jsonc.
var Extensions = []string{"json", "jsonc", "ts", "js", "mjs", "cjs"}

// FileName returns the conventional file name for a variant and extension.
func FileName(name, ext string) string {
	return "config." + name + "." + ext
}

// Path locates the configuration file for name inside dir. dir is resolved
// against the working directory. The directory is checked before any
// candidate file is probed.
func Path(fsys store.FileSystem, dir, name string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", &FolderNotFoundError{Dir: dir, Err: err}
	}

	isDir, err := store.IsDir(fsys, absDir)
	if err != nil {
		return "", &FolderNotFoundError{Dir: absDir, Err: err}
	}
	if !isDir {
		return "", &FolderNotFoundError{Dir: absDir}
	}

	for _, ext := range Extensions {
		candidate := filepath.Join(absDir, FileName(name, ext))
		ok, err := store.IsFile(fsys, candidate)
		if err != nil {
			return "", &FilesNotFoundError{
				Name:       name,
				Dir:        absDir,
				Extensions: append([]string(nil), Extensions...),
				Err:        fmt.Errorf("stat %q: %w", candidate, err),
			}
		}
		if ok {
			return candidate, nil
		}
	}

	return "", &FilesNotFoundError{
		Name:       name,
		Dir:        absDir,
		Extensions: append([]string(nil), Extensions...),
	}
}
