package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docdailey/qrand/internal/version"
)

func cmdVersion(tool string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), version.Verbose(tool))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), version.String(tool))
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed version information")

	return cmd
}
