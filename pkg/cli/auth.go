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
	"github.com/alphasense-labs/asingest/pkg/serializer"
)

func authCmd() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Token operations against the AlphaSense auth endpoint",
		Commands: []*cli.Command{
			authLoginCmd(),
			authRefreshCmd(),
		},
	}
}

func authLoginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Exchange configured credentials for a bearer token",
		Description: `Perform a single OAuth2 password-grant exchange and print the resulting
token. Useful to verify credentials or to obtain a token for scripted use of
the ingestion API.

# Examples

  asingest auth login
  asingest auth login -c prod.toml --format yaml`,
		Flags: []cli.Flag{
			configFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return tokenAction(ctx, cmd, func(ctx context.Context, a *auth.Authenticator) (*auth.Token, error) {
				return a.Login(ctx)
			})
		},
	}
}

func authRefreshCmd() *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Exchange a refresh token for a new bearer token",
		Description: `Perform a single OAuth2 refresh_token grant. The upload flow never
refreshes on its own; this command serves callers that hold a refresh token
from a previous login and want a fresh access token without re-sending
credentials.

# Examples

  asingest auth refresh --refresh-token "$REFRESH_TOKEN"`,
		Flags: []cli.Flag{
			configFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:     "refresh-token",
				Usage:    "Refresh token obtained from a previous login",
				Sources:  cli.EnvVars("ALPHASENSE_REFRESH_TOKEN"),
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			refreshToken := cmd.String("refresh-token")
			return tokenAction(ctx, cmd, func(ctx context.Context, a *auth.Authenticator) (*auth.Token, error) {
				return a.Refresh(ctx, refreshToken)
			})
		},
	}
}

// tokenAction shares the config-load / exchange / serialize plumbing between
// the login and refresh commands.
func tokenAction(ctx context.Context, cmd *cli.Command,
	exchange func(context.Context, *auth.Authenticator) (*auth.Token, error)) error {

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	token, err := exchange(ctx, auth.New(cfg))
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}

	slog.Info("token acquired", "token", token.Redacted(), "expiry", token.Expiry)

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, token); err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}

	return nil
}
