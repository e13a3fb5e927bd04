/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"errors"

	"github.com/ortuman/xoauth2/oauth"
)

// Credential prompt names, in collection order.
const (
	PromptClientID     = "clientID"
	PromptClientSecret = "clientSecret"
	PromptAccessToken  = "accessToken"
	PromptRefreshToken = "refreshToken"
)

// TextPrompt represents a single named text request to be answered by a CallbackHandler.
type TextPrompt struct {
	Name   string
	Secret bool
	Answer string
}

// CallbackHandler answers credential prompts in place.
// Returning an error wrapping ErrUnsupportedCallback signals that a prompt
// cannot be serviced.
type CallbackHandler interface {
	Handle(prompts []*TextPrompt) error
}

// CallbackHandlerFunc is an adapter to use ordinary functions as callback handlers.
type CallbackHandlerFunc func(prompts []*TextPrompt) error

// Handle calls f(prompts).
func (f CallbackHandlerFunc) Handle(prompts []*TextPrompt) error {
	return f(prompts)
}

// Collect gathers OAuth2 credentials issuing the four credential prompts
// in fixed order. Answers are read by position.
func Collect(h CallbackHandler) (*oauth.Credentials, error) {
	prompts := []*TextPrompt{
		{Name: PromptClientID},
		{Name: PromptClientSecret, Secret: true},
		{Name: PromptAccessToken, Secret: true},
		{Name: PromptRefreshToken, Secret: true},
	}
	if err := h.Handle(prompts); err != nil {
		if errors.Is(err, ErrUnsupportedCallback) {
			return nil, &UnsupportedCollectionError{Err: err}
		}
		return nil, &IOError{Err: err}
	}
	return &oauth.Credentials{
		ClientID:     prompts[0].Answer,
		ClientSecret: prompts[1].Answer,
		AccessToken:  prompts[2].Answer,
		RefreshToken: prompts[3].Answer,
	}, nil
}
