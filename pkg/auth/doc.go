// Package auth implements the OAuth2 password-grant exchange against the
// AlphaSense auth endpoint.
//
// The endpoint accepts form-encoded grant parameters (grant_type, username,
// password, client_id, client_secret) and requires an x-api-key header on
// every request, which this package injects through a custom RoundTripper.
//
// Login performs a single attempt with no retry; failures surface as
// *AuthError with the HTTP status and response body. Refresh implements the
// refresh_token grant for callers that hold a refresh token; the standard
// upload flow authenticates once per invocation and never refreshes.
package auth
