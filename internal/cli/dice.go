package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docdailey/qrand/internal/dice"
	"github.com/docdailey/qrand/internal/qrand"
)

// ExecuteDice runs the qdice command tree.
func ExecuteDice() error { return NewDiceCommand().Execute() }

// NewDiceCommand builds the qdice root. The root itself rolls: a bare
// invocation rolls 2d6, a notation argument rolls that, and a trailing
// "drop" switches to the drop-lowest stat rule.
func NewDiceCommand() *cobra.Command {
	root, opts := newRoot("qdice [notation] [drop]", "Roll dice with quantum randomness")
	root.Args = cobra.MaximumNArgs(2)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runRoll(cmd, opts, args)
	}
	root.AddCommand(cmdDiceStats(opts), cmdVersion("qdice"))
	return root
}

func runRoll(cmd *cobra.Command, opts *rootOptions, args []string) error {
	notation := "2d6"
	statMode := false
	if len(args) > 0 {
		notation = args[0]
	}
	if len(args) > 1 {
		if args[1] != "drop" {
			return fmt.Errorf("unknown argument %q, did you mean \"drop\"?", args[1])
		}
		statMode = true
	}

	spec, err := dice.Parse(notation)
	if err != nil {
		return err
	}

	client, err := opts.client()
	if err != nil {
		return err
	}

	if statMode {
		rollStat(cmd, client, spec)
		return nil
	}

	rolls, err := client.Integers(cmd.Context(), 1, spec.Sides, spec.Count)
	if err != nil {
		return finish(cmd, err)
	}

	out := cmd.OutOrStdout()
	sum := dice.Summarize(rolls)
	fmt.Fprintf(out, "Rolled %s: %v\n", spec, rolls)
	fmt.Fprintf(out, "  Total: %d\n", sum.Total)
	if spec.Count >= 10 {
		fmt.Fprintf(out, "  Min: %d, Max: %d, Avg: %.1f\n", sum.Min, sum.Max, sum.Avg)
	}
	return nil
}

// rollStat rolls one drop-lowest stat. Failures are reported and produce
// a zero stat rather than aborting the run.
func rollStat(cmd *cobra.Command, client *qrand.Client, spec dice.Spec) int {
	if spec.Count < 4 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", dice.ErrInsufficientDice)
		return 0
	}

	rolls, err := client.Integers(cmd.Context(), 1, spec.Sides, spec.Count)
	if err != nil {
		reportRequestError(cmd, err)
		return 0
	}

	stat, err := dice.DropLowest(rolls)
	if err != nil {
		// Only reachable when the service returns fewer dice than asked.
		reportRequestError(cmd, &qrand.RequestError{Op: "random/integers", Err: err})
		return 0
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rolled %s drop lowest: %v (dropped %v)\n", spec, stat.Kept, stat.Dropped)
	fmt.Fprintf(out, "  Stat total: %d\n", stat.Total)
	return stat.Total
}

func cmdDiceStats(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Roll six ability scores (4d6 drop lowest)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Rolling stats (4d6 drop lowest):")
			fmt.Fprintln(out, strings.Repeat("-", 30))

			// Six independent sequential rolls, reported in invocation
			// order. A failed roll scores zero; the run keeps going.
			spec := dice.Spec{Count: 4, Sides: 6}
			stats := make([]int, 0, 6)
			total := 0
			for i := 0; i < 6; i++ {
				stat := rollStat(cmd, client, spec)
				stats = append(stats, stat)
				total += stat
			}

			fmt.Fprintln(out, strings.Repeat("-", 30))
			fmt.Fprintf(out, "Final stats: %v\n", stats)
			fmt.Fprintf(out, "Total: %d, Average: %.1f\n", total, float64(total)/6)
			return nil
		},
	}
}
