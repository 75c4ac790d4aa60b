// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolve decides which configuration variant to load and where its
// file lives.
package resolve

// Name applies the precedence explicit > fromArgs > fallback. Empty strings
// count as absent at every tier.
func Name(explicit, fromArgs, fallback string) (string, error) {
	for _, candidate := range [...]string{explicit, fromArgs, fallback} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", ErrConfigNameUndefined
}
