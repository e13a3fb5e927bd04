/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package config

import (
	"github.com/ortuman/xoauth2/log"
)

// Logger represents a logger manager configuration.
type Logger struct {
	Level   log.Level
	LogPath string
}

type loggerProxyType struct {
	Level   string `yaml:"level"`
	LogPath string `yaml:"log_path"`
}

// UnmarshalYAML satisfies Unmarshaler interface.
func (l *Logger) UnmarshalYAML(unmarshal func(interface{}) error) error {
	lp := loggerProxyType{}
	if err := unmarshal(&lp); err != nil {
		return err
	}
	lvl, err := log.ParseLevel(lp.Level)
	if err != nil {
		return err
	}
	l.Level = lvl
	l.LogPath = lp.LogPath
	return nil
}
