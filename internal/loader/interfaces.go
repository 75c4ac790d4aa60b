// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "github.com/nilswg/use-config/internal/config"

// ConfigLoader locates and loads configuration variants.
type ConfigLoader interface {
	// Load resolves the config file for opts and returns its object.
	Load(opts config.Options) (map[string]any, error)

	// Resolve merges opts and locates the config file without reading it.
	Resolve(opts config.Options) (Resolution, error)
}
