/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/net/proxy"
)

// ProviderOption configures a transport provider.
type ProviderOption func(*Provider)

// WithProxy sets the fallback proxy.
func WithProxy(p *ProxyConfig) ProviderOption {
	return func(pr *Provider) { pr.proxy = p }
}

// WithTLSTrust sets the TLS configuration used by the proxied transport.
func WithTLSTrust(cfg *tls.Config) ProviderOption {
	return func(pr *Provider) { pr.tlsCfg = cfg }
}

// WithDirectClient injects an already configured HTTP client for the direct transport.
func WithDirectClient(c *http.Client) ProviderOption {
	return func(pr *Provider) { pr.directClient = c }
}

// WithProxiedClient injects an already configured HTTP client for the proxied transport.
// Its presence enables the proxied transport even if no proxy descriptor was given.
func WithProxiedClient(c *http.Client) ProviderOption {
	return func(pr *Provider) { pr.proxiedClient = c }
}

// Provider resolves the ordered list of transports used to reach the token endpoint.
type Provider struct {
	proxy         *ProxyConfig
	tlsCfg        *tls.Config
	directClient  *http.Client
	proxiedClient *http.Client

	transports []*Transport
}

// NewProvider returns a new transport provider.
func NewProvider(opts ...ProviderOption) (*Provider, error) {
	p := &Provider{}
	for _, opt := range opts {
		opt(p)
	}
	direct := p.directClient
	if direct == nil {
		direct = &http.Client{Transport: newHTTPTransport(nil)}
	}
	p.transports = append(p.transports, &Transport{
		cfg:    Config{Kind: Direct},
		client: direct,
	})

	if p.proxy == nil && p.proxiedClient == nil {
		return p, nil
	}
	proxied := p.proxiedClient
	if proxied == nil {
		rt, err := newProxiedTransport(p.proxy, p.tlsCfg)
		if err != nil {
			return nil, err
		}
		proxied = &http.Client{Transport: rt}
	}
	p.transports = append(p.transports, &Transport{
		cfg:    Config{Kind: Proxied, Proxy: p.proxy, TLS: p.tlsCfg},
		client: proxied,
	})
	return p, nil
}

// Transports returns the transports to attempt in order.
// Direct always comes first; Proxied follows only if configured.
func (p *Provider) Transports() []*Transport {
	ret := make([]*Transport, len(p.transports))
	copy(ret, p.transports)
	return ret
}

func newHTTPTransport(tlsCfg *tls.Config) *http.Transport {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	// never pick up proxy settings from the environment
	tr.Proxy = nil
	if tlsCfg != nil {
		tr.TLSClientConfig = tlsCfg.Clone()
	}
	return tr
}

func newProxiedTransport(p *ProxyConfig, tlsCfg *tls.Config) (*http.Transport, error) {
	if len(p.Host) == 0 || p.Port <= 0 {
		return nil, errors.Errorf("transport: invalid proxy address %s", p.Address())
	}
	tr := newHTTPTransport(tlsCfg)

	switch p.scheme() {
	case HTTPScheme, HTTPSScheme:
		tr.Proxy = http.ProxyURL(p.URL())

	case SOCKS5Scheme:
		var auth *proxy.Auth
		if len(p.Username) > 0 {
			auth = &proxy.Auth{User: p.Username, Password: p.Password}
		}
		dialer, err := proxy.SOCKS5("tcp", p.Address(), auth, proxy.Direct)
		if err != nil {
			return nil, errors.Wrap(err, "transport: socks5 dialer")
		}
		tr.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}

	default:
		return nil, errors.Errorf("transport: unsupported proxy scheme: %s", p.Scheme)
	}
	return tr, nil
}
