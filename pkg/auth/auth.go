/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/alphasense-labs/asingest/pkg/config"
)

// defaultTimeout bounds a single token exchange round trip.
const defaultTimeout = 30 * time.Second

// Authenticator exchanges AlphaSense credentials for bearer tokens using the
// OAuth2 password grant. Every call performs exactly one HTTP attempt; there
// is no retry or backoff.
type Authenticator struct {
	cfg    *config.Config
	client *http.Client
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithHTTPClient overrides the HTTP client used for token exchanges.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Authenticator) {
		if c != nil {
			a.client = c
		}
	}
}

// New creates an Authenticator for the given configuration.
func New(cfg *config.Config, opts ...Option) *Authenticator {
	a := &Authenticator{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login performs a password-grant token exchange against the configured auth
// endpoint. Returns a Token on HTTP 2xx with a parseable access_token field;
// otherwise a *AuthError carrying the status and response body.
func (a *Authenticator) Login(ctx context.Context) (*Token, error) {
	slog.Debug("requesting access token",
		"authURL", a.cfg.AuthURL,
		"grantType", "password",
		"username", a.cfg.Username)

	tok, err := a.oauthConfig().PasswordCredentialsToken(a.httpContext(ctx), a.cfg.Username, a.cfg.Password)
	if err != nil {
		return nil, wrapTokenError("login", err)
	}
	return newToken(tok), nil
}

// Refresh exchanges a refresh token for a new access token. The main upload
// flow never calls this; it exists for the auth refresh subcommand and for
// callers that manage long-lived sessions themselves.
func (a *Authenticator) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	if refreshToken == "" {
		return nil, &AuthError{Op: "refresh", Err: errors.New("refresh token is empty")}
	}

	slog.Debug("refreshing access token",
		"authURL", a.cfg.AuthURL,
		"grantType", "refresh_token")

	seed := &oauth2.Token{RefreshToken: refreshToken}
	tok, err := a.oauthConfig().TokenSource(a.httpContext(ctx), seed).Token()
	if err != nil {
		return nil, wrapTokenError("refresh", err)
	}
	return newToken(tok), nil
}

// oauthConfig builds the oauth2 client configuration. Client credentials go
// in the request body, matching the AlphaSense token endpoint contract.
func (a *Authenticator) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.cfg.ClientID,
		ClientSecret: a.cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  a.cfg.AuthURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// httpContext injects an HTTP client that stamps the x-api-key header on every
// token request, as required by the auth endpoint.
func (a *Authenticator) httpContext(ctx context.Context) context.Context {
	client := &http.Client{
		Timeout: a.client.Timeout,
		Transport: &apiKeyTransport{
			apiKey: a.cfg.APIKey,
			base:   a.client.Transport,
		},
	}
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}

// wrapTokenError maps oauth2 retrieval failures into the AuthError taxonomy,
// preserving HTTP status and response body when available.
func wrapTokenError(op string, err error) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		status := 0
		if rerr.Response != nil {
			status = rerr.Response.StatusCode
		}
		return &AuthError{Op: op, StatusCode: status, Body: string(rerr.Body), Err: err}
	}
	return &AuthError{Op: op, Err: err}
}
