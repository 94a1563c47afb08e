package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the blogctl CLI.
func NewRootCmd(deps Deps) *cobra.Command {
	deps = deps.withDefaults()

	cmd := &cobra.Command{
		Use:   "blogctl",
		Short: "Blog API server and operator tools",
		Long: `blogctl runs the blog HTTP API and provides operator commands
such as creating user accounts. Configuration is read from the environment.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd(deps))
	cmd.AddCommand(NewUserCmd(deps))

	return cmd
}
