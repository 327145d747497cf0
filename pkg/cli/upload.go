/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/alphasense-labs/asingest/pkg/auth"
	"github.com/alphasense-labs/asingest/pkg/config"
	"github.com/alphasense-labs/asingest/pkg/ingest"
	"github.com/alphasense-labs/asingest/pkg/metadata"
	"github.com/alphasense-labs/asingest/pkg/serializer"
)

// uploadAction runs the linear upload flow:
// config -> authenticate -> metadata -> upload -> receipt.
func uploadAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one document argument, got %d", cmd.Args().Len())
	}
	document := cmd.Args().First()

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("authenticating", "authURL", cfg.AuthURL, "username", cfg.Username)

	token, err := auth.New(cfg).Login(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	slog.Debug("token acquired", "token", token.Redacted(), "expiry", token.Expiry)

	var md metadata.Object
	if arg := cmd.String("metadata"); arg != "" {
		md, err = metadata.Load(arg)
		if err != nil {
			return fmt.Errorf("failed to load metadata: %w", err)
		}
	} else {
		md = metadata.Default(document)
	}

	receipt, err := ingest.NewClient(cfg).Upload(ctx, token.AccessToken, ingest.UploadRequest{
		Document:    document,
		Attachments: cmd.StringSlice("attachment"),
		Metadata:    md,
	})
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, receipt); err != nil {
		return fmt.Errorf("failed to serialize receipt: %w", err)
	}

	return nil
}
