/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package log

import (
	"fmt"
	"strings"
	"sync"
)

// Level represents log level type.
type Level int

const (
	// DebugLevel represents DEBUG log level.
	DebugLevel Level = iota

	// InfoLevel represents INFO log level.
	InfoLevel

	// WarningLevel represents WARNING log level.
	WarningLevel

	// ErrorLevel represents ERROR log level.
	ErrorLevel

	// OffLevel represents a disabled logger log level.
	OffLevel
)

// String returns logger's level string representation.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	default:
		return "off"
	}
}

// ParseLevel returns the level matching a configuration string.
// An empty string maps to InfoLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "off":
		return OffLevel, nil
	default:
		return OffLevel, fmt.Errorf("log: unrecognized log level: %s", s)
	}
}

// Logger represents a common logger interface.
type Logger interface {
	// Debugf uses fmt.Sprintf to log a `debug` templated message.
	Debugf(msg string, args ...interface{})

	// Debugw writes a 'debug' message to configured logger with some additional context.
	Debugw(msg string, keysAndValues ...interface{})

	// Infof uses fmt.Sprintf to log an `info` templated message.
	Infof(msg string, args ...interface{})

	// Infow writes a 'info' message to configured logger with some additional context.
	Infow(msg string, keysAndValues ...interface{})

	// Warnf uses fmt.Sprintf to log a `warn` templated message.
	Warnf(msg string, args ...interface{})

	// Warnw writes a 'warning' message to configured logger with some additional context.
	Warnw(msg string, keysAndValues ...interface{})

	// Errorf uses fmt.Sprintf to log an `error` templated message.
	Errorf(msg string, args ...interface{})

	// Errorw writes an 'error' message to configured logger with some additional context.
	Errorw(msg string, keysAndValues ...interface{})
}

var (
	instMu sync.RWMutex
	inst   Logger = Disabled
)

// Set sets the global logger.
func Set(logger Logger) {
	instMu.Lock()
	inst = logger
	instMu.Unlock()
}

// Unset restores the disabled global logger.
func Unset() {
	Set(Disabled)
}

func instance() Logger {
	instMu.RLock()
	defer instMu.RUnlock()
	return inst
}

// Debugf logs a 'debug' message through the global logger.
func Debugf(msg string, args ...interface{}) { instance().Debugf(msg, args...) }

// Debugw logs a 'debug' message with additional context.
func Debugw(msg string, keysAndValues ...interface{}) { instance().Debugw(msg, keysAndValues...) }

// Infof logs an 'info' message through the global logger.
func Infof(msg string, args ...interface{}) { instance().Infof(msg, args...) }

// Infow logs an 'info' message with additional context.
func Infow(msg string, keysAndValues ...interface{}) { instance().Infow(msg, keysAndValues...) }

// Warnf logs a 'warning' message through the global logger.
func Warnf(msg string, args ...interface{}) { instance().Warnf(msg, args...) }

// Warnw logs a 'warning' message with additional context.
func Warnw(msg string, keysAndValues ...interface{}) { instance().Warnw(msg, keysAndValues...) }

// Errorf logs an 'error' message through the global logger.
func Errorf(msg string, args ...interface{}) { instance().Errorf(msg, args...) }

// Errorw logs an 'error' message with additional context.
func Errorw(msg string, keysAndValues ...interface{}) { instance().Errorw(msg, keysAndValues...) }

// Error logs an 'error' value through the global logger.
func Error(err error) { instance().Errorf("%v", err) }
