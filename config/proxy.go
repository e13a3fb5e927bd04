/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ortuman/xoauth2/transport"
)

// Proxy represents the fallback proxy configuration.
type Proxy struct {
	Scheme   string
	Host     string
	Port     int
	Username string
	Password string
	CAFile   string
}

type proxyProxyType struct {
	Scheme   string `yaml:"scheme"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	CAFile   string `yaml:"ca_file"`
}

// UnmarshalYAML satisfies Unmarshaler interface.
func (p *Proxy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	pp := proxyProxyType{}
	if err := unmarshal(&pp); err != nil {
		return err
	}
	scheme := strings.ToLower(pp.Scheme)
	switch scheme {
	case "":
		scheme = transport.HTTPScheme
	case transport.HTTPScheme, transport.HTTPSScheme, transport.SOCKS5Scheme:
	default:
		return fmt.Errorf("config.Proxy: unrecognized scheme: %s", pp.Scheme)
	}
	if len(pp.Host) == 0 {
		return fmt.Errorf("config.Proxy: host is required")
	}
	if pp.Port <= 0 || pp.Port > 65535 {
		return fmt.Errorf("config.Proxy: invalid port: %d", pp.Port)
	}
	p.Scheme = scheme
	p.Host = pp.Host
	p.Port = pp.Port
	p.Username = pp.Username
	p.Password = pp.Password
	p.CAFile = pp.CAFile
	return nil
}

// ProxyConfig returns the transport proxy descriptor.
func (p *Proxy) ProxyConfig() *transport.ProxyConfig {
	return &transport.ProxyConfig{
		Scheme:   p.Scheme,
		Host:     p.Host,
		Port:     p.Port,
		Username: p.Username,
		Password: p.Password,
	}
}

// Breaker represents per transport circuit breaker configuration.
type Breaker struct {
	MaxFailures uint32        `yaml:"max_failures"`
	OpenTimeout time.Duration `yaml:"open_timeout"`
}
