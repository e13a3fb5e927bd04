/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package oauth

import (
	"errors"
	"fmt"

	"github.com/ortuman/xoauth2/transport"
	"golang.org/x/oauth2"
)

// ErrNoTransports is returned when a refresh is requested with an empty transport list.
var ErrNoTransports = errors.New("oauth: no transports available")

// TokenRejectedError is returned when the token endpoint answers with a
// structured OAuth error (eg. invalid_grant). The credential itself is bad,
// so the request must not be retried over another transport.
type TokenRejectedError struct {
	Transport   transport.Kind
	StatusCode  int
	Code        string
	Description string
	URI         string

	Err *oauth2.RetrieveError
}

// Error satisfies error interface.
func (e *TokenRejectedError) Error() string {
	msg := "oauth: token rejected: " + e.Code
	if len(e.Description) > 0 {
		msg += " (" + e.Description + ")"
	}
	if len(e.URI) > 0 {
		msg += " see " + e.URI
	}
	return msg
}

// Unwrap returns the underlying retrieve error.
func (e *TokenRejectedError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// TransportError is returned when the token endpoint could not be reached or
// answered with a non OAuth failure. It is eligible for retry over another transport.
type TransportError struct {
	Transport transport.Kind
	Err       error
}

// Error satisfies error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("oauth: %s transport: %v", e.Transport, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// EmptyTokenError is returned when the token endpoint reports success but
// carries no usable access token. For retry purposes it behaves as a
// transport failure.
type EmptyTokenError struct {
	Transport  transport.Kind
	StatusCode int
}

// Error satisfies error interface.
func (e *EmptyTokenError) Error() string {
	return fmt.Sprintf("oauth: %s transport: token endpoint returned an empty access token (status %d)", e.Transport, e.StatusCode)
}

// IsTokenRejected reports whether err was caused by the endpoint rejecting the credentials.
func IsTokenRejected(err error) bool {
	var te *TokenRejectedError
	return errors.As(err, &te)
}
