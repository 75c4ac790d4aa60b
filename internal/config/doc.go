// Package config assembles the [Options] that control how a configuration
// variant is located.
//
// Options are merged from several sources, the first non-empty value per
// field winning:
//  1. Caller-supplied options (or command-line flags for the CLI)
//  2. Environment variables prefixed with USECONFIG_
//  3. Built-in defaults
//
// The main entry points are [Build] for library callers and [ParseFlags] for
// the useconfig command.
package config
