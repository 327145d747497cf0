// Package cli implements the command-line interface for the asingest document
// ingestion tool.
//
// # Overview
//
// asingest uploads documents to the AlphaSense ingestion API. A run is a
// single linear flow with no retries, batching, or concurrency: load the TOML
// configuration, perform one OAuth2 password-grant exchange, load optional
// metadata, and issue one multipart upload.
//
// # Commands
//
// Upload (root command):
//
//	asingest [-c config.toml] [-m metadata.json|inline-json] [-a attachment]... [-v] <document>
//
// auth login - verify credentials and print a bearer token:
//
//	asingest auth login [-c config.toml]
//
// auth refresh - exchange a refresh token for a new bearer token:
//
//	asingest auth refresh --refresh-token TOKEN
//
// version - print version information.
//
// # Global Flags
//
//	--config, -c      Path to the TOML configuration file (default: ./alphasense.toml)
//	--metadata, -m    JSON metadata file (.json suffix) or inline JSON string
//	--attachment, -a  Attachment file path, repeatable
//	--verbose, -v     Debug logging
//	--output, -o      Result output file path (default: stdout)
//	--format, -t      Result format: json, yaml, table (default: json)
//
// # Exit Codes
//
//	0  Success
//	1  Any failure (configuration, authentication, metadata, upload)
//
// # Environment Variables
//
//	LOG_LEVEL        Logging verbosity (debug, info, warn, error)
//	ASINGEST_CONFIG  Config file path override
//	ALPHASENSE_*     Per-key configuration overrides (see pkg/config)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/alphasense-labs/asingest/pkg/cli.version=1.0.0'"
package cli
