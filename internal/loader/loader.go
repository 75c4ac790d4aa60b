// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader ties the argv scanner, the name and path resolvers and the
// extractor together into one synchronous load.
package loader

import (
	"os"

	"github.com/nilswg/use-config/internal/argv"
	"github.com/nilswg/use-config/internal/config"
	"github.com/nilswg/use-config/internal/diagnostic"
	"github.com/nilswg/use-config/internal/extract"
	"github.com/nilswg/use-config/internal/logger"
	"github.com/nilswg/use-config/internal/resolve"
	"github.com/nilswg/use-config/internal/store"
)

// Resolution is the outcome of locating a config file.
type Resolution struct {
	// Options are the merged options the file was located with.
	Options config.Options
	Name    string
	Path    string
}

type configLoader struct {
	fsys   store.FileSystem
	logger *logger.Logger
	diag   *diagnostic.Printer
}

// New returns a ConfigLoader reading through fsys. Failures are reported to
// diag and logged to log before they are returned.
func New(fsys store.FileSystem, log *logger.Logger, diag *diagnostic.Printer) ConfigLoader {
	return &configLoader{
		fsys:   fsys,
		logger: log,
		diag:   diag,
	}
}

// Default returns a ConfigLoader on the OS filesystem that prints
// diagnostics and warn-level logs to stderr.
func Default() ConfigLoader {
	log := logger.NewLogger("loader")
	log.Logger = log.Level(logger.DefaultLevel)
	return New(store.OS(), log, diagnostic.New(os.Stderr))
}

func (l *configLoader) Load(opts config.Options) (map[string]any, error) {
	res, err := l.Resolve(opts)
	if err != nil {
		return nil, err
	}
	details := detailsOf(res.Options)
	details.Path = res.Path

	source, err := l.fsys.ReadFile(res.Path)
	if err != nil {
		return nil, l.fail(err, details)
	}

	result, err := extract.ParseFile(res.Path, source)
	if err != nil {
		return nil, l.fail(err, details)
	}

	l.logger.Debug().
		Str("path", res.Path).
		Stringer("shape", result.Shape).
		Int("keys", len(result.Object)).
		Msg("config loaded")

	return result.Object, nil
}

func (l *configLoader) Resolve(opts config.Options) (Resolution, error) {
	merged, err := config.Build(opts)
	if err != nil {
		return Resolution{}, l.fail(err, detailsOf(opts))
	}
	details := detailsOf(merged)

	args := merged.Args
	if args == nil {
		args = os.Args[1:]
	}
	vars, err := argv.Extract(args, merged.Flag, merged.Delimiter)
	if err != nil {
		return Resolution{}, l.fail(err, details)
	}
	l.logger.Debug().Int("variables", len(vars)).Msg("argv scanned")

	fromArgs, _ := vars.Get(merged.ConfigKey)
	name, err := resolve.Name(merged.ConfigName, fromArgs, merged.FallbackName())
	if err != nil {
		return Resolution{}, l.fail(err, details)
	}
	l.logger.Debug().Str("name", name).Msg("config name resolved")

	path, err := resolve.Path(l.fsys, merged.ConfigDir, name)
	if err != nil {
		return Resolution{}, l.fail(err, details)
	}
	l.logger.Debug().Str("path", path).Msg("config file found")

	return Resolution{Options: merged, Name: name, Path: path}, nil
}

// fail reports err and returns it unchanged.
func (l *configLoader) fail(err error, d diagnostic.Details) error {
	l.diag.Print(err, d)
	l.logger.Error().Err(err).Str("path", d.Path).Msg("failed to load config")
	return err
}

func detailsOf(opts config.Options) diagnostic.Details {
	return diagnostic.Details{
		Flag:      opts.Flag,
		Delimiter: opts.Delimiter,
		ConfigKey: opts.ConfigKey,
	}
}
