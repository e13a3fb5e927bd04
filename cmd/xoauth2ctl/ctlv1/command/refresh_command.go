/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package command

import (
	"github.com/ortuman/xoauth2/sasl"
	"github.com/spf13/cobra"
)

// NewRefreshCommand returns the cobra command for "refresh".
func NewRefreshCommand(gf *GlobalFlags) *cobra.Command {
	var showToken bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchanges the refresh token for a new access token",
		Run: func(cmd *cobra.Command, _ []string) {
			refreshCommandFunc(cmd, gf, showToken)
		},
	}
	cmd.Flags().BoolVar(&showToken, "show-token", false, "print the access token instead of redacting it")
	return cmd
}

func refreshCommandFunc(cmd *cobra.Command, gf *GlobalFlags, showToken bool) {
	cfg := mustLoadConfig(gf)
	lg := mustSetupLogger(cfg)
	defer func() { _ = lg.Sync() }()

	creds, err := sasl.Collect(newCallbackHandler(cfg, gf))
	if err != nil {
		ExitWithError(exitCode(err), err)
	}
	provider, err := cfg.NewProvider()
	if err != nil {
		ExitWithError(ExitBadArgs, err)
	}
	ctx, cancel := commandCtx(gf)
	defer cancel()

	tok, err := cfg.NewCoordinator().Refresh(ctx, provider.Transports(), creds)
	if err != nil {
		ExitWithError(exitCode(err), err)
	}
	display := &simplePrinter{w: cmd.OutOrStdout()}
	display.Token(tok, showToken)
}
