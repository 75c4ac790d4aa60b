// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/spf13/pflag"
)

// Output formats accepted by --output.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// CLIConfig is the configuration of the useconfig command.
type CLIConfig struct {
	// Options are the loader options after merging flags, environment
	// variables and defaults. Options.Args holds the tokens left for the
	// argv scanner once the command's own flags are removed.
	Options Options
	// Output is the print format: "json" or "yaml".
	Output string
	// Watch keeps the command running and reprints on every file change.
	Watch bool
	// LogLevel is the minimum zerolog level written to stderr.
	LogLevel string
	// Version prints build information and exits.
	Version bool
}

// ParseFlags parses the useconfig command line.
//
// Flags:
//
//	--dir           directory holding config.<name>.<ext> files
//	--flag          prefix marking an argv variable (default "--")
//	--delimiter     key/value separator inside a token (default: next token)
//	--key           argv variable holding the config name (default "config")
//	--name          explicit config name
//	--default-name  fallback config name
//	--output        print format: json or yaml (default json)
//	--watch         reprint whenever the config directory changes
//	--log-level     minimum log level (default "warn")
//	--version       print build information
//
// Unknown flags are not an error: they belong to the argv variables scanned
// by the loader, e.g. "--config dev".
func ParseFlags(name string, args []string) (*CLIConfig, error) {
	var flagOpts Options
	cfg := &CLIConfig{}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	fs.StringVar(&flagOpts.ConfigDir, "dir", "", "Config directory (default \""+DefaultConfigDir+"\")")
	fs.StringVar(&flagOpts.Flag, "flag", "", "Argv variable prefix (default \""+DefaultFlag+"\")")
	fs.StringVar(&flagOpts.Delimiter, "delimiter", "", "Key/value delimiter inside one token")
	fs.StringVar(&flagOpts.ConfigKey, "key", "", "Argv variable holding the config name (default \""+DefaultConfigKey+"\")")
	fs.StringVar(&flagOpts.ConfigName, "name", "", "Explicit config name")
	fs.StringVar(&flagOpts.DefaultConfigName, "default-name", "", "Fallback config name")
	fs.StringVar(&cfg.Output, "output", OutputJSON, "Output format: json or yaml")
	fs.BoolVar(&cfg.Watch, "watch", false, "Reprint on every config change")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Minimum log level")
	fs.BoolVar(&cfg.Version, "version", false, "Print build information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts, err := newOptionsBuilder().
		withOptions(flagOpts).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}
	cfg.Options = opts
	cfg.Options.Args = passthrough(fs, args)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// passthrough returns args without the flags defined on fs and their values.
// Everything else, unknown flags included, is kept in order.
func passthrough(fs *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if !strings.HasPrefix(arg, "--") {
			out = append(out, arg)
			continue
		}

		name, _, inline := strings.Cut(arg[2:], "=")
		f := fs.Lookup(name)
		if f == nil {
			out = append(out, arg)
			continue
		}
		if !inline && f.NoOptDefVal == "" {
			i++
		}
	}
	return out
}
