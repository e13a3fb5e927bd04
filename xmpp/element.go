/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmpp

import (
	"encoding/xml"
	"io"

	"github.com/ortuman/xoauth2/pool"
)

var bufPool = pool.NewBufferPool()

// Element represents a generic and mutable XML node element.
type Element struct {
	name     string
	text     string
	attrs    attributeSet
	elements []*Element
}

// NewElementName creates a mutable XML Element instance with a given name.
func NewElementName(name string) *Element {
	return &Element{name: name}
}

// NewElementNamespace creates a mutable XML Element instance with a given name and namespace.
func NewElementNamespace(name, namespace string) *Element {
	e := &Element{name: name}
	e.SetNamespace(namespace)
	return e
}

// Name returns XML node name.
func (e *Element) Name() string {
	return e.name
}

// Attributes returns XML node attribute set.
func (e *Element) Attributes() AttributeSet {
	return e.attrs
}

// Attribute returns the value of the attribute identified by label.
func (e *Element) Attribute(label string) string {
	return e.attrs.Get(label)
}

// SetAttribute sets an XML node attribute (label=value).
func (e *Element) SetAttribute(label, value string) {
	e.attrs.setAttribute(label, value)
}

// Namespace returns 'xmlns' node attribute.
func (e *Element) Namespace() string {
	return e.attrs.Get("xmlns")
}

// SetNamespace sets 'xmlns' node attribute.
func (e *Element) SetNamespace(namespace string) {
	e.attrs.setAttribute("xmlns", namespace)
}

// Text returns XML node text value.
func (e *Element) Text() string {
	return e.text
}

// SetText sets XML node text value.
func (e *Element) SetText(text string) {
	e.text = text
}

// Elements returns all child elements.
func (e *Element) Elements() []*Element {
	return e.elements
}

// AppendElement appends a new sub element.
func (e *Element) AppendElement(elem *Element) {
	e.elements = append(e.elements, elem)
}

// String returns a string representation of the element.
func (e *Element) String() string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	_ = e.ToXML(buf, true)
	return buf.String()
}

// ToXML serializes element to a raw XML representation.
// includeClosing determines if closing tag should be attached.
func (e *Element) ToXML(w io.Writer, includeClosing bool) error {
	ew := &errWriter{w: w}
	ew.writeString("<")
	ew.writeString(e.name)

	// serialize attributes
	for _, attr := range e.attrs {
		if len(attr.Value) == 0 {
			continue
		}
		ew.writeString(" ")
		ew.writeString(attr.Label)
		ew.writeString(`="`)
		ew.escape(attr.Value)
		ew.writeString(`"`)
	}

	if len(e.elements) > 0 || len(e.text) > 0 {
		ew.writeString(">")

		if len(e.text) > 0 {
			ew.escape(e.text)
		}
		for _, elem := range e.elements {
			if ew.err == nil {
				ew.err = elem.ToXML(w, true)
			}
		}
		if includeClosing {
			ew.writeString("</")
			ew.writeString(e.name)
			ew.writeString(">")
		}
	} else {
		if includeClosing {
			ew.writeString("/>")
		} else {
			ew.writeString(">")
		}
	}
	return ew.err
}

// errWriter keeps the first write error and skips subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) escape(s string) {
	if ew.err != nil {
		return
	}
	ew.err = xml.EscapeText(ew.w, []byte(s))
}
