// Package config loads the asingest TOML configuration.
//
// Configuration lives in a single [alphasense] table:
//
//	[alphasense]
//	username           = "analyst@example.com"
//	password           = "secret"
//	api_key            = "key"
//	client_id          = "client"
//	client_secret      = "client-secret"
//	auth_url           = "https://api.alpha-sense.com/auth"
//	ingestion_base_url = "https://research.alpha-sense.com/services/i/ingestion-api/v1"
//
// Every key can be overridden with an ALPHASENSE_* environment variable
// (ALPHASENSE_PASSWORD, ALPHASENSE_AUTH_URL, ...), which keeps secrets out of
// files in CI environments. A .env file in the working directory is honored
// when the CLI loads it.
//
// All fields are required; Load returns a *ConfigError naming the missing
// keys when validation fails. The returned Config is never mutated after Load.
package config
