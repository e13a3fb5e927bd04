/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package ctlv1

import (
	"time"

	"github.com/ortuman/xoauth2/cmd/xoauth2ctl/ctlv1/command"
	"github.com/spf13/cobra"
)

const (
	cliName        = "xoauth2ctl"
	cliDescription = "A command line client for X-OAUTH2 XMPP authentication."

	defaultConfigFile     = "xoauth2.yml"
	defaultCommandTimeOut = 30 * time.Second
)

var (
	globalFlags = command.GlobalFlags{}
)

var (
	rootCmd = &cobra.Command{
		Use:        cliName,
		Short:      cliDescription,
		SuggestFor: []string{"xoauth2ctl"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigFile, "config", defaultConfigFile, "configuration file path")
	rootCmd.PersistentFlags().StringSliceVar(&globalFlags.EnvFiles, "env-file", nil, "dotenv files holding XOAUTH2_* credentials")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Interactive, "interactive", false, "prompt for missing credentials on the terminal")
	rootCmd.PersistentFlags().DurationVar(&globalFlags.CommandTimeOut, "command-timeout", defaultCommandTimeOut, "timeout for running command")

	rootCmd.AddCommand(
		command.NewAuthCommand(&globalFlags),
		command.NewRefreshCommand(&globalFlags),
		command.NewVersionCommand(),
	)
}

// Start runs xoauth2ctl root command.
func Start() error {
	// make help just show the usage
	rootCmd.SetHelpTemplate(`{{.UsageString}}`)
	return rootCmd.Execute()
}

// MustStart is like Start but exiting in case an error occurs.
func MustStart() {
	if err := Start(); err != nil {
		command.ExitWithError(command.ExitError, err)
	}
}
