// Package cli holds the cobra command trees for the qdice and qcrypto
// tools. Both share the same persistent flags, config resolution, and
// error reporting.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/docdailey/qrand/internal/qrand"
)

// rootOptions carries the persistent flags shared by both tools.
type rootOptions struct {
	baseURL string
	timeout time.Duration
	cfgPath string
	debug   bool
}

func newRoot(use, short string) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	c := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	c.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "quantum service base URL (default from config)")
	c.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (default 5s)")
	c.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "config file path (default ~/.qrand/config.yaml)")
	c.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return c, opts
}

// client resolves flag > env > config file > defaults into a constructed
// client. Nothing ambient: the resulting base URL and timeout are fixed
// for the life of the command.
func (o *rootOptions) client() (*qrand.Client, error) {
	cfg, err := loadConfig(o.cfgPath)
	if err != nil {
		return nil, err
	}

	base := cfg.BaseURL
	if o.baseURL != "" {
		base = o.baseURL
	}
	timeout := cfg.Timeout
	if o.timeout > 0 {
		timeout = o.timeout
	}

	return qrand.New(qrand.Config{BaseURL: base, Timeout: timeout}), nil
}

// reportRequestError surfaces a failed call without aborting the process;
// the operation simply has nothing to show.
func reportRequestError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Request error: %v\n", err)
}

// finish separates the two error kinds: request errors are reported and
// swallowed so the process keeps going, validation errors propagate to
// cobra as usage failures.
func finish(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var reqErr *qrand.RequestError
	if errors.As(err, &reqErr) {
		reportRequestError(cmd, reqErr)
		return nil
	}
	return err
}
