package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docdailey/qrand/internal/entropy"
	"github.com/docdailey/qrand/internal/qrand"
)

func cmdPassword(opts *rootOptions) *cobra.Command {
	var length int
	var symbols, noUpper, noLower, noDigits bool

	c := &cobra.Command{
		Use:   "password",
		Short: "Generate a secure password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			spec := qrand.PasswordSpec{
				Length:    length,
				Uppercase: !noUpper,
				Lowercase: !noLower,
				Digits:    !noDigits,
				Symbols:   symbols,
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating %d-character password...\n", length)

			password, err := client.Password(cmd.Context(), spec)
			if err != nil {
				return finish(cmd, err)
			}

			fmt.Fprintf(out, "Password: %s\n", password)

			charset := entropy.Charset{
				Uppercase: spec.Uppercase,
				Lowercase: spec.Lowercase,
				Digits:    spec.Digits,
				Symbols:   spec.Symbols,
			}
			bits, err := entropy.Bits(spec.Length, charset.Size())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Entropy unavailable: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "Entropy: %.1f bits\n", bits)
			fmt.Fprintf(out, "Charset size: %d characters\n", charset.Size())
			return nil
		},
	}

	c.Flags().IntVar(&length, "length", 16, "password length (8-128)")
	c.Flags().BoolVar(&symbols, "symbols", false, "include symbols")
	c.Flags().BoolVar(&noUpper, "no-uppercase", false, "exclude uppercase letters")
	c.Flags().BoolVar(&noLower, "no-lowercase", false, "exclude lowercase letters")
	c.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	return c
}
