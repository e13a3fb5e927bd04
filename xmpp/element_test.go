/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmpp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElement_Build(t *testing.T) {
	e := NewElementNamespace("auth", "urn:ietf:params:xml:ns:xmpp-sasl")
	e.SetAttribute("mechanism", "X-OAUTH2")
	e.SetAttribute("mechanism", "PLAIN")
	e.SetText("AGFsaWNlAHRva2Vu")

	require.Equal(t, "auth", e.Name())
	require.Equal(t, "urn:ietf:params:xml:ns:xmpp-sasl", e.Namespace())
	require.Equal(t, "PLAIN", e.Attribute("mechanism"))
	require.Equal(t, 2, e.Attributes().Count())
	require.Equal(t, "AGFsaWNlAHRva2Vu", e.Text())
}

func TestElement_ToXML(t *testing.T) {
	e := NewElementNamespace("auth", "urn:ietf:params:xml:ns:xmpp-sasl")
	e.SetAttribute("mechanism", "X-OAUTH2")
	e.SetAttribute("empty", "")
	e.SetText("abc=")
	require.Equal(t, `<auth xmlns="urn:ietf:params:xml:ns:xmpp-sasl" mechanism="X-OAUTH2">abc=</auth>`, e.String())

	buf := new(bytes.Buffer)
	require.Nil(t, e.ToXML(buf, false))
	require.Equal(t, `<auth xmlns="urn:ietf:params:xml:ns:xmpp-sasl" mechanism="X-OAUTH2">abc=`, buf.String())

	empty := NewElementName("success")
	require.Equal(t, "<success/>", empty.String())
}

func TestElement_ChildElements(t *testing.T) {
	e := NewElementName("failure")
	e.AppendElement(NewElementName("not-authorized"))
	require.Len(t, e.Elements(), 1)
	require.Equal(t, "<failure><not-authorized/></failure>", e.String())
}

func TestElement_Escaping(t *testing.T) {
	e := NewElementName("text")
	e.SetAttribute("label", `a"b<c`)
	e.SetText("x & y")
	require.Equal(t, `<text label="a&#34;b&lt;c">x &amp; y</text>`, e.String())

	// invalid XML characters are replaced
	e.SetText("a\x00b")
	require.Equal(t, "<text label=\"a&#34;b&lt;c\">a\uFFFDb</text>", e.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestElement_ToXMLWriteError(t *testing.T) {
	e := NewElementName("auth")
	e.SetText("payload")
	require.EqualError(t, e.ToXML(failingWriter{}, true), "broken pipe")
}
