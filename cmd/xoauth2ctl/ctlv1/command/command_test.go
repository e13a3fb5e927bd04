/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package command

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ortuman/xoauth2/config"
	"github.com/ortuman/xoauth2/oauth"
	"github.com/ortuman/xoauth2/sasl"
	"github.com/ortuman/xoauth2/transport"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type recordingHandler struct {
	asked []string
}

func (h *recordingHandler) Handle(prompts []*sasl.TextPrompt) error {
	for _, p := range prompts {
		h.asked = append(h.asked, p.Name)
		p.Answer = "collected-" + p.Name
	}
	return nil
}

func TestConfigHandler(t *testing.T) {
	next := &recordingHandler{}
	h := &configHandler{
		creds: config.Credentials{ClientID: "cfg-client", RefreshToken: "cfg-refresh"},
		next:  next,
	}
	creds, err := sasl.Collect(h)
	require.Nil(t, err)
	require.Equal(t, []string{sasl.PromptClientSecret, sasl.PromptAccessToken}, next.asked)
	require.Equal(t, "cfg-client", creds.ClientID)
	require.Equal(t, "collected-clientSecret", creds.ClientSecret)
	require.Equal(t, "collected-accessToken", creds.AccessToken)
	require.Equal(t, "cfg-refresh", creds.RefreshToken)
}

func TestConfigHandler_Complete(t *testing.T) {
	next := &recordingHandler{}
	h := &configHandler{
		creds: config.Credentials{ClientID: "a", ClientSecret: "b", AccessToken: "c", RefreshToken: "d"},
		next:  next,
	}
	_, err := sasl.Collect(h)
	require.Nil(t, err)
	require.Empty(t, next.asked)
}

func TestTerminalHandler(t *testing.T) {
	out := &bytes.Buffer{}
	h := newTerminalHandler(strings.NewReader("  my-client-id \n"), out)

	prompts := []*sasl.TextPrompt{{Name: sasl.PromptClientID}}
	require.Nil(t, h.Handle(prompts))
	require.Equal(t, "my-client-id", prompts[0].Answer)
	require.Equal(t, "Client ID: ", out.String())

	err := h.Handle([]*sasl.TextPrompt{{Name: "password"}})
	require.True(t, errors.Is(err, sasl.ErrUnsupportedCallback))

	err = h.Handle([]*sasl.TextPrompt{{Name: sasl.PromptClientID}})
	require.NotNil(t, err)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitBadFeature, exitCode(&sasl.UnsupportedAuthError{Mechanism: sasl.XOAuth2Mechanism}))
	require.Equal(t, ExitBadFeature, exitCode(&sasl.UnsupportedCollectionError{Err: sasl.ErrUnsupportedCallback}))
	require.Equal(t, ExitIO, exitCode(&sasl.IOError{Err: errors.New("eof")}))
	require.Equal(t, ExitInvalidInput, exitCode(&oauth.TokenRejectedError{Code: "invalid_grant"}))
	require.Equal(t, ExitBadConnection, exitCode(&oauth.TransportError{Transport: transport.Proxied, Err: errors.New("refused")}))
	require.Equal(t, ExitBadConnection, exitCode(pkgerrors.Wrap(&oauth.EmptyTokenError{Transport: transport.Direct}, "refresh")))
	require.Equal(t, ExitInterrupted, exitCode(context.DeadlineExceeded))
	require.Equal(t, ExitError, exitCode(errors.New("boom")))
}

func TestPrinter(t *testing.T) {
	out := &bytes.Buffer{}
	p := &simplePrinter{w: out}

	require.Nil(t, p.AuthElement(sasl.Compose("alice", "token")))
	require.True(t, strings.HasPrefix(out.String(), `<auth mechanism="X-OAUTH2"`))
	require.True(t, strings.HasSuffix(out.String(), "</auth>\n"))

	out.Reset()
	expiry := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	p.Token(&oauth2.Token{AccessToken: "ya29.secret", TokenType: "Bearer", Expiry: expiry}, false)
	require.NotContains(t, out.String(), "ya29.secret")
	require.Contains(t, out.String(), "[REDACTED]")
	require.Contains(t, out.String(), "2030-01-02T03:04:05Z")

	out.Reset()
	p.Token(&oauth2.Token{AccessToken: "ya29.secret"}, true)
	require.Contains(t, out.String(), "ya29.secret")
}

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewVersionCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.Nil(t, cmd.Execute())
	require.Equal(t, "xoauth2ctl version: v0.1.0\n", out.String())
}
