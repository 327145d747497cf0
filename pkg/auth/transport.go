/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package auth

import "net/http"

// apiKeyTransport stamps the x-api-key header on every outgoing request
// before delegating to the base transport.
type apiKeyTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	// Per RoundTripper contract, do not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("x-api-key", t.apiKey)
	return base.RoundTrip(clone)
}
