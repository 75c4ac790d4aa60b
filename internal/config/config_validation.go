// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [Options] before they are used.
//
// Delimiter is not checked: an empty delimiter is the positional grammar.
func (o *Options) validate() error {
	if strings.TrimSpace(o.Flag) == "" {
		return ErrInvalidFlag
	}

	if strings.TrimSpace(o.ConfigKey) == "" {
		return ErrInvalidConfigKey
	}

	return nil
}

func (c *CLIConfig) validate() error {
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return ErrInvalidOutput
	}

	return c.Options.validate()
}
