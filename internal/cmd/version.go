package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version can be set at build time with -ldflags "-X github.com/rmera/stoich/internal/cmd.Version=..."
var Version = "1.0.0"

func banner() string {
	return "stoich " + Version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), banner())
		},
	}
}
