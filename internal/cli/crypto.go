package cli

import (
	"github.com/spf13/cobra"
)

// ExecuteCrypto runs the qcrypto command tree.
func ExecuteCrypto() error { return NewCryptoCommand().Execute() }

// NewCryptoCommand builds the qcrypto root.
func NewCryptoCommand() *cobra.Command {
	root, opts := newRoot("qcrypto", "Cryptographic material from quantum entropy")
	root.AddCommand(
		cmdKey(opts),
		cmdPassword(opts),
		cmdUUID(opts),
		cmdToken(opts),
		cmdStatus(opts),
		cmdVersion("qcrypto"),
	)
	root.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}
	return root
}
