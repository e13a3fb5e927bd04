/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package command

import (
	"fmt"

	"github.com/ortuman/xoauth2/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand returns the cobra command for "version".
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of xoauth2ctl",
		Run:   versionCommandFunc,
	}
}

func versionCommandFunc(cmd *cobra.Command, _ []string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "xoauth2ctl version:", version.ApplicationVersion)
}
