/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type envCredentials struct {
	ClientID     string `env:"XOAUTH2_CLIENT_ID"`
	ClientSecret string `env:"XOAUTH2_CLIENT_SECRET"`
	AccessToken  string `env:"XOAUTH2_ACCESS_TOKEN"`
	RefreshToken string `env:"XOAUTH2_REFRESH_TOKEN"`
}

// EnvCallbackHandler answers credential prompts from XOAUTH2_* environment variables.
type EnvCallbackHandler struct {
	dotenvFiles []string
}

// NewEnvCallbackHandler returns a handler reading the process environment.
// Given dotenv files are loaded first; variables already set are never overridden.
func NewEnvCallbackHandler(dotenvFiles ...string) *EnvCallbackHandler {
	return &EnvCallbackHandler{dotenvFiles: dotenvFiles}
}

// Handle satisfies CallbackHandler interface.
func (h *EnvCallbackHandler) Handle(prompts []*TextPrompt) error {
	if len(h.dotenvFiles) > 0 {
		if err := godotenv.Load(h.dotenvFiles...); err != nil {
			return errors.Wrap(err, "sasl: loading env file")
		}
	}
	var c envCredentials
	if err := env.Parse(&c); err != nil {
		return errors.Wrap(err, "sasl: parsing environment")
	}
	for _, p := range prompts {
		switch p.Name {
		case PromptClientID:
			p.Answer = c.ClientID
		case PromptClientSecret:
			p.Answer = c.ClientSecret
		case PromptAccessToken:
			p.Answer = c.AccessToken
		case PromptRefreshToken:
			p.Answer = c.RefreshToken
		default:
			return errors.Wrapf(ErrUnsupportedCallback, "prompt %q", p.Name)
		}
	}
	return nil
}
