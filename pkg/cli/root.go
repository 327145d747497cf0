/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/alphasense-labs/asingest/pkg/logging"
)

const name = "asingest"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// New builds the root command. Invoked without a subcommand it uploads the
// document given as the single positional argument.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Upload documents to the AlphaSense ingestion API",
		ArgsUsage:             "<document>",
		EnableShellCompletion: true,
		Description: `Upload a document to AlphaSense through the ingestion API.

The flow is linear: load the TOML configuration, exchange credentials for a
bearer token, load optional metadata, and issue a single multipart upload.
Each step makes exactly one attempt; any failure terminates the run with a
non-zero exit code.

# Examples

Upload with default config (./alphasense.toml):
  asingest report.pdf

Upload with metadata from a file and two attachments:
  asingest -m metadata.json -a exhibit.pdf -a notes.txt report.pdf

Upload with inline metadata, writing the receipt to a file:
  asingest -m '{"title":"Q3 Earnings Call"}' -o receipt.json report.pdf`,
		Flags: []cli.Flag{
			configFlag,
			metadataFlag,
			attachmentFlag,
			verboseFlag,
			logLevelFlag,
			outputFlag,
			formatFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			// Load .env if present so ALPHASENSE_* overrides work locally.
			_ = godotenv.Load()

			level := cmd.String("log-level")
			if cmd.Bool("verbose") {
				level = "debug"
			}
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting", "name", name, "version", version, "logLevel", level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			authCmd(),
			versionCmd(),
		},
		Action: uploadAction,
	}
}

// Execute runs the CLI with signal-aware cancellation. It is called by
// main.main() and exits the process non-zero on any error.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
