// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package useconfig loads a named configuration variant from a directory of
// config.<name>.<ext> files.
//
// The variant name comes from an explicit option, a command-line variable
// such as "--config dev", or a default. The file may be JSON, JSON with
// comments, or a JavaScript/TypeScript module exporting one object literal;
// modules are read statically and never executed.
//
//	type AppConfig struct {
//		Port int    `json:"port"`
//		DSN  string `json:"dsn"`
//	}
//
//	cfg, err := useconfig.Load[AppConfig](useconfig.Options{ConfigDir: "./configurations"})
package useconfig

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nilswg/use-config/internal/config"
	"github.com/nilswg/use-config/internal/loader"
)

// Options controls how a variant is located. Zero fields are filled from
// USECONFIG_* environment variables and then from defaults.
type Options = config.Options

// LoadMap loads the configuration object selected by opts.
func LoadMap(opts Options) (map[string]any, error) {
	return loader.Default().Load(opts)
}

// Load loads the configuration selected by opts and decodes it into T.
// Fields are matched by their `json` tag, or by name when untagged.
func Load[T any](opts Options) (T, error) {
	var out T
	m, err := LoadMap(opts)
	if err != nil {
		return out, err
	}
	return Decode[T](m)
}

// Decode converts a loaded object into T. Numbers are converted to the
// field's numeric type and strings such as "30s" to time.Duration.
func Decode[T any](m map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return out, fmt.Errorf("error creating config decoder: %w", err)
	}

	if err := dec.Decode(m); err != nil {
		return out, fmt.Errorf("error decoding config: %w", err)
	}
	return out, nil
}
