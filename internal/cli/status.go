package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func cmdStatus(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show service health and entropy device state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			health, err := client.Health(cmd.Context())
			if err != nil {
				return finish(cmd, err)
			}
			fmt.Fprintf(out, "Status: %s\n", health.Status)
			fmt.Fprintf(out, "Device: %s\n", health.Device)
			fmt.Fprintf(out, "Buffer available: %d bytes\n", health.BufferAvailable)

			info, err := client.DeviceInfo(cmd.Context())
			if err != nil {
				return finish(cmd, err)
			}
			if len(info.Device) > 0 {
				doc, err := json.MarshalIndent(info.Device, "", "  ")
				if err == nil {
					fmt.Fprintf(out, "Device info:\n%s\n", doc)
				}
			}
			fmt.Fprintf(out, "Buffer size: %d bytes\n", info.BufferSize)
			return nil
		},
	}
}
