/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package auth

import "fmt"

// AuthError represents a failed token exchange. StatusCode and Body are
// populated when the auth endpoint returned a non-2xx response.
type AuthError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("auth.%s: token endpoint returned status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("auth.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("auth.%s: token exchange failed", e.Op)
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}
