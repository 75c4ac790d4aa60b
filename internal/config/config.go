// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable read by [Build].
const EnvPrefix = "USECONFIG_"

// Default option values applied when neither the caller nor the environment
// provides one.
const (
	DefaultConfigDir = "./configurations"
	DefaultFlag      = "--"
	DefaultConfigKey = "config"
)

// Options describes how a configuration variant is located and loaded.
// It is a plain value; equal Options always resolve the same way.
//
// Struct tags:
//   - env: variable name below [EnvPrefix] (caarlos0/env).
type Options struct {
	// ConfigDir is the directory searched for config.<name>.<ext> files.
	// Relative paths are resolved against the working directory.
	// Env: USECONFIG_DIR
	ConfigDir string `env:"DIR"`

	// Flag is the prefix marking an argv token as a variable, e.g. "--" or "$".
	// Env: USECONFIG_FLAG
	Flag string `env:"FLAG"`

	// Delimiter separates key and value inside one token ("--config=dev").
	// Empty or whitespace means the value is the next token ("--config dev").
	// Env: USECONFIG_DELIMITER
	Delimiter string `env:"DELIMITER"`

	// ConfigKey is the argv variable holding the variant name.
	// Env: USECONFIG_KEY
	ConfigKey string `env:"KEY"`

	// ConfigName, when set, overrides the argv variable. It is never read
	// from the environment.
	ConfigName string

	// EnvConfigName is used when neither ConfigName nor the argv variable is
	// set. It ranks above DefaultConfigName.
	// Env: USECONFIG_NAME
	EnvConfigName string `env:"NAME"`

	// DefaultConfigName is the last name tried.
	// Env: USECONFIG_DEFAULT_NAME
	DefaultConfigName string `env:"DEFAULT_NAME"`

	// Args are the command-line tokens to scan. nil means os.Args[1:].
	Args []string
}

// Defaults returns the built-in option values.
func Defaults() Options {
	return Options{
		ConfigDir: DefaultConfigDir,
		Flag:      DefaultFlag,
		ConfigKey: DefaultConfigKey,
	}
}

// Build merges caller-supplied options with environment variables and
// defaults, then validates the result. For every field the first non-empty
// source wins:
//  1. caller options
//  2. environment variables (USECONFIG_*)
//  3. [Defaults]
func Build(caller Options) (Options, error) {
	return newOptionsBuilder().
		withOptions(caller).
		withEnv().
		withDefaults().
		build()
}

// FallbackName returns the name used when the argv variable is absent:
// EnvConfigName, else DefaultConfigName.
func (o Options) FallbackName() string {
	if o.EnvConfigName != "" {
		return o.EnvConfigName
	}
	return o.DefaultConfigName
}
