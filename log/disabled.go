/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package log

// Disabled is a logger that discards every message.
var Disabled Logger = &disabledLogger{}

type disabledLogger struct{}

func (*disabledLogger) Debugf(string, ...interface{}) {}
func (*disabledLogger) Debugw(string, ...interface{}) {}
func (*disabledLogger) Infof(string, ...interface{})  {}
func (*disabledLogger) Infow(string, ...interface{})  {}
func (*disabledLogger) Warnf(string, ...interface{})  {}
func (*disabledLogger) Warnw(string, ...interface{})  {}
func (*disabledLogger) Errorf(string, ...interface{}) {}
func (*disabledLogger) Errorw(string, ...interface{}) {}
