// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "io/fs"

//go:generate mockgen -source=interfaces.go -destination=../mock/filesystem_mock.go -package=mock

// FileSystem is the read-only filesystem capability needed to locate and read
// a configuration file.
type FileSystem interface {
	// Stat returns file info for path. A missing path yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	Stat(path string) (fs.FileInfo, error)

	// ReadFile reads the whole file at path into memory.
	ReadFile(path string) ([]byte, error)
}
