/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package config

import "strings"

// ConfigError represents errors that can occur while loading or validating
// the configuration file.
type ConfigError struct {
	Op      string
	Path    string
	Missing []string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config." + e.Op)
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	if len(e.Missing) > 0 {
		b.WriteString(": missing or invalid required fields: " + strings.Join(e.Missing, ", "))
		return b.String()
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
