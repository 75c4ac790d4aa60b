package useconfig

import (
	"github.com/nilswg/use-config/internal/argv"
	"github.com/nilswg/use-config/internal/extract"
	"github.com/nilswg/use-config/internal/resolve"
)

// Errors returned by [Load] and [LoadMap], matched with errors.Is.
var (
	// ErrInvalidProcessVariable: an argv token does not split into exactly
	// one key and one value.
	ErrInvalidProcessVariable = argv.ErrInvalidProcessVariable
	// ErrConfigNameUndefined: no explicit, argv or default name was given.
	ErrConfigNameUndefined = resolve.ErrConfigNameUndefined
	// ErrConfigFolderNotFound: the config directory is missing or not a directory.
	ErrConfigFolderNotFound = resolve.ErrConfigFolderNotFound
	// ErrConfigFilesNotFound: no config.<name>.<ext> file exists for the name.
	ErrConfigFilesNotFound = resolve.ErrConfigFilesNotFound
	// ErrInvalidConfigFile: the file is not valid data or exports no plain
	// object literal.
	ErrInvalidConfigFile = extract.ErrInvalidConfigFile
)
