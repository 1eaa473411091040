package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cmdUUID(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Generate a UUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			id, err := client.UUID(cmd.Context())
			if err != nil {
				return finish(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "UUID: %s\n", id)
			return nil
		},
	}
}
