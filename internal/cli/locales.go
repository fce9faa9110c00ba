package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLocalesCommand creates the 'locales' command.
func NewLocalesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales in the order \"any\" tries them",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, l := range opts.registry.Locales() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), l); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
