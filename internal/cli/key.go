package cli

import (
	"crypto"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/spf13/cobra"

	"github.com/docdailey/qrand/internal/qrand"
)

func cmdKey(opts *rootOptions) *cobra.Command {
	var bits int
	var asJWK bool

	c := &cobra.Command{
		Use:   "key",
		Short: "Generate an encryption key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating %d-bit encryption key...\n", bits)

			key, err := client.Key(cmd.Context(), bits)
			if err != nil {
				return finish(cmd, err)
			}

			fmt.Fprintf(out, "Key (hex): %s\n", key.Key)
			fmt.Fprintf(out, "Key (base64): %s\n", key.KeyBase64)
			fmt.Fprintf(out, "Bits: %d\n", key.Bits)
			fmt.Fprintf(out, "Bytes: %d\n", key.Bits/8)

			if asJWK {
				doc, err := keyAsJWK(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "JWK:\n%s\n", doc)
			}
			return nil
		},
	}

	c.Flags().IntVar(&bits, "bits", 256, "key size in bits (128, 192, 256, or 512)")
	c.Flags().BoolVar(&asJWK, "jwk", false, "also print the key as a symmetric JWK")
	return c
}

// keyAsJWK renders the key bytes as an oct JWK with an RFC 7638
// thumbprint as the key ID.
func keyAsJWK(material qrand.KeyMaterial) ([]byte, error) {
	raw, err := hex.DecodeString(material.Key)
	if err != nil {
		return nil, fmt.Errorf("decode key hex: %w", err)
	}

	key, err := jwk.Import(raw)
	if err != nil {
		return nil, fmt.Errorf("import key: %w", err)
	}

	thumb, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return nil, fmt.Errorf("compute thumbprint: %w", err)
	}
	if err := key.Set(jwk.KeyIDKey, base64.RawURLEncoding.EncodeToString(thumb)); err != nil {
		return nil, fmt.Errorf("set key id: %w", err)
	}

	return json.MarshalIndent(key, "", "  ")
}
