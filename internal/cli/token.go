package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cmdToken(opts *rootOptions) *cobra.Command {
	var length int
	var urlSafe bool

	c := &cobra.Command{
		Use:   "token",
		Short: "Generate a secure token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating %d-byte token...\n", length)

			token, err := client.Token(cmd.Context(), length, urlSafe)
			if err != nil {
				return finish(cmd, err)
			}

			fmt.Fprintf(out, "Token: %s\n", token)
			fmt.Fprintf(out, "Length: %d characters\n", len(token))
			return nil
		},
	}

	c.Flags().IntVar(&length, "length", 32, "token length in bytes")
	c.Flags().BoolVar(&urlSafe, "url-safe", true, "use URL-safe base64 encoding")
	return c
}
