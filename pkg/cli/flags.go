/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/alphasense-labs/asingest/pkg/config"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the TOML configuration file",
		Sources: cli.EnvVars("ASINGEST_CONFIG"),
		Value:   config.DefaultPath,
	}

	metadataFlag = &cli.StringFlag{
		Name:    "metadata",
		Aliases: []string{"m"},
		Usage:   "Document metadata: path to a JSON file (.json) or an inline JSON string",
	}

	attachmentFlag = &cli.StringSliceFlag{
		Name:    "attachment",
		Aliases: []string{"a"},
		Usage:   "Path to an attachment file (can be repeated)",
	}

	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enable verbose (debug) logging",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path for the result (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format: json, yaml, table",
		Value:   "json",
	}
)
