/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package command

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bgentry/speakeasy"
	"github.com/ortuman/xoauth2/config"
	"github.com/ortuman/xoauth2/sasl"
	"github.com/pkg/errors"
)

var promptLabels = map[string]string{
	sasl.PromptClientID:     "Client ID",
	sasl.PromptClientSecret: "Client secret",
	sasl.PromptAccessToken:  "Access token (optional)",
	sasl.PromptRefreshToken: "Refresh token",
}

// configHandler answers prompts from configured credentials and delegates
// the unanswered ones to next.
type configHandler struct {
	creds config.Credentials
	next  sasl.CallbackHandler
}

func newCallbackHandler(cfg *config.Config, gf *GlobalFlags) sasl.CallbackHandler {
	var next sasl.CallbackHandler
	if gf.Interactive {
		next = newTerminalHandler(os.Stdin, os.Stderr)
	} else {
		next = sasl.NewEnvCallbackHandler(gf.EnvFiles...)
	}
	return &configHandler{creds: cfg.Credentials, next: next}
}

func (h *configHandler) Handle(prompts []*sasl.TextPrompt) error {
	var missing []*sasl.TextPrompt
	for _, p := range prompts {
		var v string
		switch p.Name {
		case sasl.PromptClientID:
			v = h.creds.ClientID
		case sasl.PromptClientSecret:
			v = h.creds.ClientSecret
		case sasl.PromptAccessToken:
			v = h.creds.AccessToken
		case sasl.PromptRefreshToken:
			v = h.creds.RefreshToken
		}
		if len(v) > 0 {
			p.Answer = v
			continue
		}
		missing = append(missing, p)
	}
	if len(missing) == 0 || h.next == nil {
		return nil
	}
	return h.next.Handle(missing)
}

// terminalHandler prompts on a terminal. Secrets are read without echo.
type terminalHandler struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalHandler(in io.Reader, out io.Writer) *terminalHandler {
	return &terminalHandler{in: bufio.NewReader(in), out: out}
}

func (h *terminalHandler) Handle(prompts []*sasl.TextPrompt) error {
	for _, p := range prompts {
		label, ok := promptLabels[p.Name]
		if !ok {
			return errors.Wrapf(sasl.ErrUnsupportedCallback, "prompt %q", p.Name)
		}
		if p.Secret {
			v, err := speakeasy.FAsk(h.out, label+": ")
			if err != nil {
				return errors.Wrapf(err, "reading %s", p.Name)
			}
			p.Answer = v
			continue
		}
		if _, err := io.WriteString(h.out, label+": "); err != nil {
			return err
		}
		line, err := h.in.ReadString('\n')
		if err != nil && !(err == io.EOF && len(line) > 0) {
			return errors.Wrapf(err, "reading %s", p.Name)
		}
		p.Answer = strings.TrimSpace(line)
	}
	return nil
}
