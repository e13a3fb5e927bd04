/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package transport

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"strconv"
)

// Kind represents a token endpoint transport kind.
type Kind int

const (
	// Direct represents a transport reaching the endpoint without intermediaries.
	Direct Kind = iota + 1

	// Proxied represents a transport reaching the endpoint through the fallback proxy.
	Proxied
)

// String returns Kind string representation.
func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Proxied:
		return "proxied"
	}
	return ""
}

// Supported proxy schemes.
const (
	HTTPScheme   = "http"
	HTTPSScheme  = "https"
	SOCKS5Scheme = "socks5"
)

// ProxyConfig describes the fallback proxy.
type ProxyConfig struct {
	Scheme   string
	Host     string
	Port     int
	Username string
	Password string
}

// Address returns proxy host:port address.
func (p *ProxyConfig) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// URL returns the proxy URL, including user credentials if any.
func (p *ProxyConfig) URL() *url.URL {
	u := &url.URL{Scheme: p.scheme(), Host: p.Address()}
	if len(p.Username) > 0 {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// String returns a loggable proxy representation. Credentials are never included.
func (p *ProxyConfig) String() string {
	return p.scheme() + "://" + p.Address()
}

func (p *ProxyConfig) scheme() string {
	if len(p.Scheme) == 0 {
		return HTTPScheme
	}
	return p.Scheme
}

// Config represents a transport configuration.
type Config struct {
	Kind  Kind
	Proxy *ProxyConfig
	TLS   *tls.Config
}

// Transport binds a transport configuration to the HTTP client used to reach
// the token endpoint.
type Transport struct {
	cfg    Config
	client *http.Client
}

// Kind returns transport kind.
func (t *Transport) Kind() Kind {
	return t.cfg.Kind
}

// Config returns transport configuration.
func (t *Transport) Config() Config {
	return t.cfg
}

// String returns a loggable transport representation.
func (t *Transport) String() string {
	if t.cfg.Proxy != nil {
		return t.cfg.Kind.String() + "(" + t.cfg.Proxy.String() + ")"
	}
	return t.cfg.Kind.String()
}

// Do sends an HTTP request through the transport.
// Proxied requests activate the process-wide proxy state for the duration
// of the call, and reset it once the call returns, whatever the outcome.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	if t.cfg.Kind == Proxied && t.cfg.Proxy != nil {
		release := activateProxy(t.cfg.Proxy)
		defer release()
	}
	return t.client.Do(req)
}
