/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package metadata

import "fmt"

// MetadataError represents a failure to read, parse, or encode document
// metadata.
type MetadataError struct {
	Op     string
	Source string
	Err    error
}

// Error implements the error interface.
func (e *MetadataError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("metadata.%s %s: %v", e.Op, e.Source, e.Err)
	}
	return fmt.Sprintf("metadata.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *MetadataError) Unwrap() error {
	return e.Err
}
