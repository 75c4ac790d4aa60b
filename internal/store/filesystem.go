// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the filesystem access used to probe for and read
// configuration files.
package store

import (
	"errors"
	"io/fs"
	"os"
)

type osFileSystem struct{}

// OS returns a [FileSystem] backed by the os package.
func OS() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// IsDir reports whether path exists and is a directory. Stat errors other
// than non-existence are returned to the caller.
func IsDir(fsys FileSystem, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether path exists and is not a directory.
func IsFile(fsys FileSystem, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
