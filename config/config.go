/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config represents a global configuration.
type Config struct {
	Logger      Logger      `yaml:"logger"`
	Identity    Identity    `yaml:"identity"`
	Credentials Credentials `yaml:"credentials"`
	TokenURL    string      `yaml:"token_url"`
	Proxy       *Proxy      `yaml:"proxy"`
	Breaker     Breaker     `yaml:"breaker"`
}

// Identity represents the authenticating account configuration.
type Identity struct {
	User string `yaml:"user"`
	Host string `yaml:"host"`
}

// Credentials represents pre-supplied OAuth2 credentials.
// Missing values are collected at runtime.
type Credentials struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
}

// IsComplete returns whether or not a refresh can be issued without collecting credentials.
func (c *Credentials) IsComplete() bool {
	return len(c.ClientID) > 0 && len(c.ClientSecret) > 0 && len(c.RefreshToken) > 0
}

// FromFile loads configuration from a specified file.
func (cfg *Config) FromFile(configFile string) error {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return errors.Wrap(err, "config: reading file")
	}
	return cfg.FromBuffer(bytes.NewBuffer(b))
}

// FromBuffer loads configuration from a specified byte buffer.
func (cfg *Config) FromBuffer(buf *bytes.Buffer) error {
	if err := yaml.Unmarshal(buf.Bytes(), cfg); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}
