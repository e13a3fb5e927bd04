/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package pool

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferPool_GetAndPut(t *testing.T) {
	p := NewBufferPool()

	buf := p.Get()
	require.Equal(t, "*bytes.Buffer", reflect.ValueOf(buf).Type().String())

	buf.WriteString("ya29.secret-access-token")
	require.Equal(t, 24, buf.Len())
	p.Put(buf)

	buf = p.Get()
	require.Equal(t, 0, buf.Len())
}

func TestBufferPool_PutWipesContents(t *testing.T) {
	p := NewBufferPool()

	buf := p.Get()
	buf.WriteString("refresh-token")
	raw := buf.Bytes()
	p.Put(buf)

	require.Equal(t, bytes.Repeat([]byte{0}, len(raw)), raw)
}

func TestBufferPool_PutOversized(t *testing.T) {
	p := NewBufferPool()

	buf := p.Get()
	buf.Grow(maxPooledBufferSize * 2)
	require.NotPanics(t, func() { p.Put(buf) })
}
