/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package main

import "github.com/ortuman/xoauth2/cmd/xoauth2ctl/ctlv1"

func main() {
	ctlv1.MustStart()
}
