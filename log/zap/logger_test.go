/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package zap

import (
	"path/filepath"
	"testing"

	"github.com/ortuman/xoauth2/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := newLogger(zap.New(core))

	l.Debugf("hidden %d", 1)
	l.Infof("refreshed on %s", "direct")
	l.Warnw("fallback", "transport", "proxied")
	l.Errorf("failed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	require.Equal(t, "refreshed on direct", entries[0].Message)
	require.Equal(t, "fallback", entries[1].Message)
	require.Equal(t, "proxied", entries[1].ContextMap()["transport"])
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestLogger_ImplementsInterface(t *testing.T) {
	var _ log.Logger = (*Logger)(nil)
}

func TestNewLogger(t *testing.T) {
	out := filepath.Join(t.TempDir(), "xoauth2.log")

	l, err := NewLogger(log.DebugLevel, out)
	require.Nil(t, err)
	l.Infof("hello")
	_ = l.Sync()

	require.FileExists(t, out)
}

func TestZapLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, zapLevel(log.DebugLevel))
	require.Equal(t, zapcore.WarnLevel, zapLevel(log.WarningLevel))
	require.True(t, zapLevel(log.OffLevel) > zapcore.FatalLevel)
}
