package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the 'version' command.
func NewVersionCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show idcard version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version := opts.version
			if version == "" {
				version = "dev"
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "idcard version "+version)
		},
	}
}
