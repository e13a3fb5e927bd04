/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package command

import (
	"context"

	"github.com/ortuman/xoauth2/sasl"
	"github.com/ortuman/xoauth2/xmpp"
	"github.com/spf13/cobra"
)

// NewAuthCommand returns the cobra command for "auth".
func NewAuthCommand(gf *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Refreshes the access token and prints the X-OAUTH2 auth element",
		Run: func(cmd *cobra.Command, _ []string) {
			authCommandFunc(cmd, gf)
		},
	}
}

func authCommandFunc(cmd *cobra.Command, gf *GlobalFlags) {
	cfg := mustLoadConfig(gf)
	lg := mustSetupLogger(cfg)
	defer func() { _ = lg.Sync() }()

	provider, err := cfg.NewProvider()
	if err != nil {
		ExitWithError(ExitBadArgs, err)
	}
	display := &simplePrinter{w: cmd.OutOrStdout()}
	sender := sasl.SenderFunc(func(_ context.Context, elem *xmpp.Element) error {
		return display.AuthElement(elem)
	})
	mech := sasl.NewXOAuth2(cfg.NewCoordinator(), provider, sender)

	ctx, cancel := commandCtx(gf)
	defer cancel()

	if _, err := mech.AuthenticateWithCallback(ctx, cfg.SASLIdentity(), newCallbackHandler(cfg, gf)); err != nil {
		ExitWithError(exitCode(err), err)
	}
}
