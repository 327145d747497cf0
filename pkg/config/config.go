/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"errors"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// DefaultPath is the config file used when no --config flag is given.
const DefaultPath = "alphasense.toml"

// envPrefix is prepended to upper-cased field keys for environment overrides,
// e.g. ALPHASENSE_USERNAME overrides the username key.
const envPrefix = "ALPHASENSE_"

// Config holds the credentials and endpoints required to authenticate against
// and upload to the AlphaSense APIs. It is loaded once per invocation and
// immutable thereafter.
type Config struct {
	Username         string `toml:"username" validate:"required"`
	Password         string `toml:"password" validate:"required"`
	APIKey           string `toml:"api_key" validate:"required"`
	ClientID         string `toml:"client_id" validate:"required"`
	ClientSecret     string `toml:"client_secret" validate:"required"`
	AuthURL          string `toml:"auth_url" validate:"required,url"`
	IngestionBaseURL string `toml:"ingestion_base_url" validate:"required,url"`
}

// fileConfig mirrors the on-disk layout: all keys live under the
// [alphasense] table.
type fileConfig struct {
	AlphaSense *Config `toml:"alphasense"`
}

// Load reads the TOML configuration file at path (DefaultPath when empty),
// applies ALPHASENSE_* environment overrides, and validates that all required
// fields are present. Returns a *ConfigError on any failure.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, &ConfigError{Op: "load", Path: path, Err: err}
	}

	if fc.AlphaSense == nil {
		return nil, &ConfigError{Op: "load", Path: path, Err: errors.New("missing [alphasense] section")}
	}

	cfg := fc.AlphaSense
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}

	slog.Debug("configuration loaded",
		"path", path,
		"authURL", cfg.AuthURL,
		"ingestionBaseURL", cfg.IngestionBaseURL)

	return cfg, nil
}

// Validate checks that every required field is set and that URL fields parse
// as URLs. Returns a *ConfigError listing the offending keys.
func (c *Config) Validate() error {
	v := validator.New()

	// Report violations using the TOML key names users see in the file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ConfigError{Op: "validate", Err: err}
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return &ConfigError{Op: "validate", Missing: missing, Err: err}
}

// applyEnvOverrides replaces field values with ALPHASENSE_* environment
// variables when set. Environment always wins over file content.
func (c *Config) applyEnvOverrides() {
	overrides := map[string]*string{
		"USERNAME":           &c.Username,
		"PASSWORD":           &c.Password,
		"API_KEY":            &c.APIKey,
		"CLIENT_ID":          &c.ClientID,
		"CLIENT_SECRET":      &c.ClientSecret,
		"AUTH_URL":           &c.AuthURL,
		"INGESTION_BASE_URL": &c.IngestionBaseURL,
	}
	for key, field := range overrides {
		if v := os.Getenv(envPrefix + key); v != "" {
			*field = v
		}
	}
}
