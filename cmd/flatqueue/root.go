package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-flatqueue/pkg/settings"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "flatqueue",
		Short:        "Replay push/pop workloads against a flat queue and report buffer behavior",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(newSimulateCmd(opts), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// load returns the config file given by --config, or the defaults.
func (o *rootOptions) load() (settings.Config, error) {
	if o.configPath == "" {
		return settings.Default(), nil
	}
	return settings.Load(o.configPath)
}
