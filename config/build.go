/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package config

import (
	"github.com/ortuman/xoauth2/log/zap"
	"github.com/ortuman/xoauth2/oauth"
	"github.com/ortuman/xoauth2/sasl"
	"github.com/ortuman/xoauth2/transport"
	"golang.org/x/oauth2"
)

// NewLogger returns a logger built from logger configuration.
func (cfg *Config) NewLogger() (*zap.Logger, error) {
	return zap.NewLogger(cfg.Logger.Level, cfg.Logger.LogPath)
}

// NewProvider returns the transport provider described by proxy configuration.
func (cfg *Config) NewProvider(opts ...transport.ProviderOption) (*transport.Provider, error) {
	if cfg.Proxy != nil {
		opts = append(opts, transport.WithProxy(cfg.Proxy.ProxyConfig()))

		if len(cfg.Proxy.CAFile) > 0 {
			tlsCfg, err := transport.LoadTLSTrust(cfg.Proxy.CAFile)
			if err != nil {
				return nil, err
			}
			opts = append(opts, transport.WithTLSTrust(tlsCfg))
		}
	}
	return transport.NewProvider(opts...)
}

// NewCoordinator returns a retry coordinator targeting the configured token endpoint.
func (cfg *Config) NewCoordinator() *oauth.Coordinator {
	endpoint := oauth.Endpoint
	if len(cfg.TokenURL) > 0 {
		endpoint = oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams}
	}
	return oauth.NewCoordinator(
		oauth.NewHTTPRefresher(endpoint),
		oauth.WithBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout),
	)
}

// OAuthCredentials returns a fresh credentials value for a single authentication attempt.
func (cfg *Config) OAuthCredentials() *oauth.Credentials {
	return &oauth.Credentials{
		ClientID:     cfg.Credentials.ClientID,
		ClientSecret: cfg.Credentials.ClientSecret,
		AccessToken:  cfg.Credentials.AccessToken,
		RefreshToken: cfg.Credentials.RefreshToken,
	}
}

// SASLIdentity returns the configured authentication identity.
func (cfg *Config) SASLIdentity() sasl.Identity {
	return sasl.Identity{User: cfg.Identity.User, Host: cfg.Identity.Host}
}
