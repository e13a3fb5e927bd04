/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package zap

import (
	"github.com/ortuman/xoauth2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger represents a zap logger implementation.
type Logger struct {
	lg       *zap.Logger
	sgLogger *zap.SugaredLogger
}

// NewLogger creates an initialized zap logger instance writing to stderr
// and, if not empty, to outputPath.
func NewLogger(level log.Level, outputPath string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	outputPaths := []string{"stderr"}
	if len(outputPath) > 0 {
		outputPaths = append(outputPaths, outputPath)
	}
	cfg.OutputPaths = outputPaths

	lg, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return newLogger(lg), nil
}

func newLogger(lg *zap.Logger) *Logger {
	return &Logger{
		lg:       lg,
		sgLogger: lg.Sugar(),
	}
}

// Debugf uses fmt.Sprintf to log a `debug` templated message.
func (l *Logger) Debugf(msg string, args ...interface{}) {
	l.sgLogger.Debugf(msg, args...)
}

// Debugw writes a 'debug' message to configured logger with some additional context.
func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) {
	l.sgLogger.Debugw(msg, keysAndValues...)
}

// Infof uses fmt.Sprintf to log an `info` templated message.
func (l *Logger) Infof(msg string, args ...interface{}) {
	l.sgLogger.Infof(msg, args...)
}

// Infow writes a 'info' message to configured logger with some additional context.
func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	l.sgLogger.Infow(msg, keysAndValues...)
}

// Warnf uses fmt.Sprintf to log a `warn` templated message.
func (l *Logger) Warnf(msg string, args ...interface{}) {
	l.sgLogger.Warnf(msg, args...)
}

// Warnw writes a 'warning' message to configured logger with some additional context.
func (l *Logger) Warnw(msg string, keysAndValues ...interface{}) {
	l.sgLogger.Warnw(msg, keysAndValues...)
}

// Errorf uses fmt.Sprintf to log an `error` templated message.
func (l *Logger) Errorf(msg string, args ...interface{}) {
	l.sgLogger.Errorf(msg, args...)
}

// Errorw writes an 'error' message to configured logger with some additional context.
func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sgLogger.Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.lg.Sync()
}

func zapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.DebugLevel:
		return zapcore.DebugLevel
	case log.InfoLevel:
		return zapcore.InfoLevel
	case log.WarningLevel:
		return zapcore.WarnLevel
	case log.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		// above fatal: nothing gets written
		return zapcore.FatalLevel + 1
	}
}
