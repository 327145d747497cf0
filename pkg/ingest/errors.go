/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package ingest

import "fmt"

// UploadError represents a failed document upload. StatusCode and Body are
// populated when the ingestion endpoint returned a non-2xx response; Path is
// set when a local file could not be read before the request was sent.
type UploadError struct {
	Op         string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	if e.StatusCode != 0 && e.Body != "" {
		return fmt.Sprintf("ingest.%s: ingestion endpoint returned status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	if e.Path != "" {
		return fmt.Sprintf("ingest.%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("ingest.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *UploadError) Unwrap() error {
	return e.Err
}
