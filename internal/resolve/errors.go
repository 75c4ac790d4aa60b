// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolve

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfigNameUndefined is returned when neither an explicit name, an
	// argv-derived name, nor a fallback name is available.
	ErrConfigNameUndefined = errors.New("config name undefined")

	// ErrConfigFolderNotFound is returned when the configuration directory
	// does not exist or is not a directory.
	ErrConfigFolderNotFound = errors.New("config folder not found")

	// ErrConfigFilesNotFound is returned when the directory exists but none
	// of the candidate file names does.
	ErrConfigFilesNotFound = errors.New("config files not found")
)

// FolderNotFoundError reports the directory that was searched. Err is set
// when the directory could not be inspected, e.g. permission denied.
type FolderNotFoundError struct {
	Dir string
	Err error
}

func (e *FolderNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrConfigFolderNotFound, e.Dir, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrConfigFolderNotFound, e.Dir)
}

func (e *FolderNotFoundError) Unwrap() []error {
	return withCause(ErrConfigFolderNotFound, e.Err)
}

// FilesNotFoundError reports the variant name, the directory and the
// extensions that were probed. Err is set when a candidate could not be
// inspected; probing stops there.
type FilesNotFoundError struct {
	Name       string
	Dir        string
	Extensions []string
	Err        error
}

func (e *FilesNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: config.%s.{%s} in %s",
		ErrConfigFilesNotFound, e.Name, strings.Join(e.Extensions, ","), e.Dir)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FilesNotFoundError) Unwrap() []error {
	return withCause(ErrConfigFilesNotFound, e.Err)
}

func withCause(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
