/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"strings"

	"github.com/ortuman/xoauth2/xmpp/jid"
	"github.com/pkg/errors"
)

// Identity represents the authenticating account.
type Identity struct {
	User string
	Host string
}

// JID returns the identity bare address.
// User may be a full account address (eg. alice@gmail.com) or a node local to Host.
func (id Identity) JID() (*jid.JID, error) {
	if len(id.User) == 0 {
		return nil, errors.New("sasl: empty user")
	}
	if len(id.Host) == 0 {
		return nil, errors.New("sasl: empty host")
	}
	var j *jid.JID
	var err error
	if strings.Contains(id.User, "@") {
		j, err = jid.NewWithString(id.User, false)
	} else {
		j, err = jid.New(id.User, id.Host, "", false)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "sasl: invalid user %q", id.User)
	}
	if !j.IsBare() {
		return nil, errors.Errorf("sasl: user %q must not carry a resource", id.User)
	}
	return j, nil
}

// Validate checks that identity is a well formed XMPP account.
func (id Identity) Validate() error {
	_, err := id.JID()
	return err
}
