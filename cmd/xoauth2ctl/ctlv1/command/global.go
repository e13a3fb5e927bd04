/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ortuman/xoauth2/config"
	"github.com/ortuman/xoauth2/log"
	"github.com/ortuman/xoauth2/log/zap"
	"github.com/ortuman/xoauth2/oauth"
	"github.com/ortuman/xoauth2/sasl"
)

// Exit codes.
const (
	ExitSuccess = iota
	ExitError
	ExitBadConnection
	ExitInvalidInput
	ExitBadFeature
	ExitInterrupted
	ExitIO
	ExitBadArgs = 128
)

// GlobalFlags are flags that defined globally and are inherited to all sub-commands.
type GlobalFlags struct {
	ConfigFile     string
	EnvFiles       []string
	Interactive    bool
	CommandTimeOut time.Duration
}

// ExitWithError prints err to stderr and terminates the process with code.
func ExitWithError(code int, err error) {
	_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(code)
}

func exitCode(err error) int {
	var (
		uae *sasl.UnsupportedAuthError
		uce *sasl.UnsupportedCollectionError
		ioe *sasl.IOError
		tre *oauth.TokenRejectedError
		te  *oauth.TransportError
		ete *oauth.EmptyTokenError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &uae), errors.As(err, &uce):
		return ExitBadFeature
	case errors.As(err, &ioe):
		return ExitIO
	case errors.As(err, &tre):
		return ExitInvalidInput
	case errors.As(err, &te), errors.As(err, &ete):
		return ExitBadConnection
	}
	return ExitError
}

func mustLoadConfig(gf *GlobalFlags) *config.Config {
	var cfg config.Config
	if err := cfg.FromFile(gf.ConfigFile); err != nil {
		ExitWithError(ExitBadArgs, err)
	}
	return &cfg
}

func mustSetupLogger(cfg *config.Config) *zap.Logger {
	lg, err := cfg.NewLogger()
	if err != nil {
		ExitWithError(ExitError, err)
	}
	log.Set(lg)
	return lg
}

func commandCtx(gf *GlobalFlags) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), gf.CommandTimeOut)
}
