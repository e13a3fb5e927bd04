/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCallback is returned by a CallbackHandler that cannot answer a prompt.
	ErrUnsupportedCallback = errors.New("sasl: unsupported callback")

	// ErrEmptyAccessToken is returned when no access token is available right before composing.
	ErrEmptyAccessToken = errors.New("sasl: empty access token")
)

// UnsupportedAuthError is returned when password based authentication is
// requested on a token only mechanism.
type UnsupportedAuthError struct {
	Mechanism string
}

// Error satisfies error interface.
func (e *UnsupportedAuthError) Error() string {
	return fmt.Sprintf("sasl: password authentication is not supported by %s mechanism", e.Mechanism)
}

// UnsupportedCollectionError is returned when the callback handler cannot
// service the credential prompts.
type UnsupportedCollectionError struct {
	Err error
}

// Error satisfies error interface.
func (e *UnsupportedCollectionError) Error() string {
	return fmt.Sprintf("sasl: credential collection not supported: %v", e.Err)
}

// Unwrap returns the handler error.
func (e *UnsupportedCollectionError) Unwrap() error {
	return e.Err
}

// IOError is returned when the callback source fails while collecting credentials.
type IOError struct {
	Err error
}

// Error satisfies error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("sasl: credential collection failed: %v", e.Err)
}

// Unwrap returns the handler error.
func (e *IOError) Unwrap() error {
	return e.Err
}
