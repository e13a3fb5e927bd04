/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/ortuman/xoauth2/log"
	"github.com/ortuman/xoauth2/oauth"
	"github.com/ortuman/xoauth2/pool"
	"github.com/ortuman/xoauth2/transport"
	"github.com/ortuman/xoauth2/xmpp"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// XOAuth2Mechanism is the Google Talk OAuth2 SASL mechanism name.
const XOAuth2Mechanism = "X-OAUTH2"

const (
	saslNamespace       = "urn:ietf:params:xml:ns:xmpp-sasl"
	googleAuthNamespace = "http://www.google.com/talk/protocol/auth"
	googleAuthService   = "oauth2"
)

var bufPool = pool.NewBufferPool()

// Mechanism defines a client side SASL mechanism.
type Mechanism interface {
	// Name returns mechanism name.
	Name() string

	// Authenticate runs the mechanism for identity and returns the element sent to the server.
	Authenticate(ctx context.Context, id Identity, creds *oauth.Credentials) (*xmpp.Element, error)
}

// Sender delivers an element over the XMPP stream.
type Sender interface {
	SendElement(ctx context.Context, elem *xmpp.Element) error
}

// SenderFunc is an adapter to use ordinary functions as senders.
type SenderFunc func(ctx context.Context, elem *xmpp.Element) error

// SendElement calls f(ctx, elem).
func (f SenderFunc) SendElement(ctx context.Context, elem *xmpp.Element) error {
	return f(ctx, elem)
}

// TokenRefresher obtains a fresh access token over an ordered transport list.
type TokenRefresher interface {
	Refresh(ctx context.Context, transports []*transport.Transport, creds *oauth.Credentials) (*oauth2.Token, error)
}

// TransportSource resolves the transports used to reach the token endpoint.
type TransportSource interface {
	Transports() []*transport.Transport
}

// State represents an authentication attempt state.
type State int

const (
	// Idle represents an attempt not yet started.
	Idle State = iota

	// Collecting represents an attempt gathering credentials.
	Collecting

	// Refreshing represents an attempt obtaining an access token.
	Refreshing

	// Composing represents an attempt building and sending the auth element.
	Composing

	// Sent represents a completed attempt.
	Sent

	// Failed represents an aborted attempt.
	Failed
)

// String returns State string representation.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Collecting:
		return "collecting"
	case Refreshing:
		return "refreshing"
	case Composing:
		return "composing"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	}
	return ""
}

// XOAuth2 implements the X-OAUTH2 mechanism.
type XOAuth2 struct {
	refresher  TokenRefresher
	transports TransportSource
	sender     Sender

	mu    sync.RWMutex
	state State
	err   error
}

// NewXOAuth2 returns a new X-OAUTH2 mechanism.
func NewXOAuth2(refresher TokenRefresher, transports TransportSource, sender Sender) *XOAuth2 {
	return &XOAuth2{
		refresher:  refresher,
		transports: transports,
		sender:     sender,
	}
}

// Name satisfies Mechanism interface.
func (x *XOAuth2) Name() string {
	return XOAuth2Mechanism
}

// State returns the state reached by the last authentication attempt.
func (x *XOAuth2) State() State {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.state
}

// Err returns the failure reason of the last attempt, if any.
func (x *XOAuth2) Err() error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.err
}

// AuthenticatePassword always fails. X-OAUTH2 has no password form.
func (x *XOAuth2) AuthenticatePassword(_, _, _ string) error {
	return x.fail(&UnsupportedAuthError{Mechanism: XOAuth2Mechanism})
}

// AuthenticateWithCallback collects credentials from h and authenticates identity.
func (x *XOAuth2) AuthenticateWithCallback(ctx context.Context, id Identity, h CallbackHandler) (*xmpp.Element, error) {
	x.setState(Collecting)
	creds, err := Collect(h)
	if err != nil {
		return nil, x.fail(err)
	}
	return x.Authenticate(ctx, id, creds)
}

// Authenticate satisfies Mechanism interface.
// The access token is always refreshed before composing. A send failure is
// returned as is and never retried.
func (x *XOAuth2) Authenticate(ctx context.Context, id Identity, creds *oauth.Credentials) (*xmpp.Element, error) {
	if err := id.Validate(); err != nil {
		return nil, x.fail(err)
	}
	if creds == nil {
		return nil, x.fail(oauth.ErrIncompleteCredentials)
	}
	x.setState(Refreshing)
	if _, err := x.refresher.Refresh(ctx, x.transports.Transports(), creds); err != nil {
		return nil, x.fail(err)
	}

	x.setState(Composing)
	if len(creds.AccessToken) == 0 {
		return nil, x.fail(ErrEmptyAccessToken)
	}
	elem := Compose(id.User, creds.AccessToken)
	if err := x.sender.SendElement(ctx, elem); err != nil {
		return nil, x.fail(errors.Wrap(err, "sasl: sending auth element"))
	}
	x.setState(Sent)
	log.Debugf("%s auth element sent for %s", XOAuth2Mechanism, id.User)
	return elem, nil
}

func (x *XOAuth2) setState(st State) {
	x.mu.Lock()
	x.state = st
	x.err = nil
	x.mu.Unlock()
}

func (x *XOAuth2) fail(err error) error {
	x.mu.Lock()
	x.state = Failed
	x.err = err
	x.mu.Unlock()
	return err
}

// Compose builds the X-OAUTH2 auth element for user and accessToken.
func Compose(user, accessToken string) *xmpp.Element {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	buf.WriteByte(0)
	buf.WriteString(user)
	buf.WriteByte(0)
	buf.WriteString(accessToken)

	elem := xmpp.NewElementName("auth")
	elem.SetAttribute("mechanism", XOAuth2Mechanism)
	elem.SetAttribute("auth:service", googleAuthService)
	elem.SetAttribute("xmlns:auth", googleAuthNamespace)
	elem.SetNamespace(saslNamespace)
	elem.SetText(base64.StdEncoding.EncodeToString(buf.Bytes()))
	return elem
}
