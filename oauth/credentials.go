/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package oauth

import (
	"errors"
	"fmt"
)

// ErrIncompleteCredentials is returned when a refresh is requested without
// the client identity or refresh token.
var ErrIncompleteCredentials = errors.New("oauth: client id, client secret and refresh token are required")

// Credentials holds the OAuth2 client identity and tokens of a single
// authentication attempt. AccessToken is the only mutable field.
type Credentials struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
}

// SetAccessToken replaces current access token.
func (c *Credentials) SetAccessToken(accessToken string) {
	c.AccessToken = accessToken
}

// Validate checks that a refresh grant can be issued with these credentials.
func (c *Credentials) Validate() error {
	if c == nil || len(c.ClientID) == 0 || len(c.ClientSecret) == 0 || len(c.RefreshToken) == 0 {
		return ErrIncompleteCredentials
	}
	return nil
}

// String returns a loggable representation. Secrets are redacted.
func (c *Credentials) String() string {
	return fmt.Sprintf("client_id=%s client_secret=%s access_token=%s refresh_token=%s",
		c.ClientID, redact(c.ClientSecret), redact(c.AccessToken), redact(c.RefreshToken))
}

// GoString keeps %#v from leaking secrets.
func (c *Credentials) GoString() string {
	return "oauth.Credentials{" + c.String() + "}"
}

func redact(s string) string {
	if len(s) == 0 {
		return "<empty>"
	}
	return "[REDACTED]"
}
