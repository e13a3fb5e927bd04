/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package command

import (
	"fmt"
	"io"
	"time"

	"github.com/ortuman/xoauth2/xmpp"
	"golang.org/x/oauth2"
)

type printer interface {
	AuthElement(elem *xmpp.Element) error
	Token(tok *oauth2.Token, showToken bool)
}

type simplePrinter struct {
	w io.Writer
}

func (p *simplePrinter) AuthElement(elem *xmpp.Element) error {
	if err := elem.ToXML(p.w, true); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

func (p *simplePrinter) Token(tok *oauth2.Token, showToken bool) {
	accessToken := "[REDACTED]"
	if showToken {
		accessToken = tok.AccessToken
	}
	_, _ = fmt.Fprintln(p.w, "Access token:", accessToken)
	if len(tok.TokenType) > 0 {
		_, _ = fmt.Fprintln(p.w, "Token type:", tok.TokenType)
	}
	if !tok.Expiry.IsZero() {
		_, _ = fmt.Fprintln(p.w, "Expires at:", tok.Expiry.Format(time.RFC3339))
	}
}
