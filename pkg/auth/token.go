/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Token is the bearer credential returned by the auth endpoint. Expiry is
// best-effort: taken from expires_in when present, otherwise recovered from
// the access token's exp claim.
type Token struct {
	AccessToken  string    `json:"accessToken" yaml:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty" yaml:"expiry,omitempty"`
}

func newToken(tok *oauth2.Token) *Token {
	t := &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
	if t.Expiry.IsZero() {
		if exp, ok := jwtExpiry(t.AccessToken); ok {
			t.Expiry = exp
		}
	}
	return t
}

// jwtExpiry extracts the exp claim from a JWT access token without verifying
// the signature. The result is informational only and never used to gate
// requests.
func jwtExpiry(raw string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Valid reports whether the token has an access token that has not expired.
// Tokens without a known expiry are considered valid.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	return t.Expiry.IsZero() || time.Now().Before(t.Expiry)
}

// Redacted returns a loggable form of the access token.
func (t *Token) Redacted() string {
	if t == nil || t.AccessToken == "" {
		return ""
	}
	if len(t.AccessToken) <= 8 {
		return "********"
	}
	return t.AccessToken[:4] + "..." + t.AccessToken[len(t.AccessToken)-4:]
}
