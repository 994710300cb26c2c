// Command taktgrid computes takt-time CPM schedules from plan files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/taktgrid/fingerprint"
	"github.com/katalvlaran/taktgrid/grid"
	"github.com/katalvlaran/taktgrid/schedule"
	"github.com/katalvlaran/taktgrid/taktio"
)

var (
	flagPlan    string
	flagJSON    bool
	flagNumeric bool
	flagCell    string
	flagDays    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taktgrid",
		Short: "Deterministic takt-time CPM scheduling over zone×trade grids",
		Long: `taktgrid loads a takt plan (YAML, JSON or HCL), derives the dependency
graph from flow/zone adjacency, runs the forward and backward CPM passes
and reports per-cell windows, the critical path and the project finish.`,
	}

	rootCmd.PersistentFlags().StringVar(&flagPlan, "plan", "", "Path to the plan file (.yaml, .yml, .json or .hcl)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagNumeric, "numeric-order", false, "Break topological ties by (location,wagon) instead of key strings")

	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(delayCmd())
	rootCmd.AddCommand(fingerprintCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadPlan reads the --plan file, failing with a usage error when unset.
func loadPlan() (grid.Input, error) {
	if flagPlan == "" {
		return grid.Input{}, errors.New("--plan is required")
	}

	return taktio.LoadPlan(flagPlan)
}

// computeOptions translates CLI flags into engine options.
func computeOptions() []schedule.Option {
	var opts []schedule.Option
	if flagNumeric {
		opts = append(opts, schedule.WithNumericTieBreak())
	}

	return opts
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Compute the full schedule and critical path",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadPlan()
			if err != nil {
				return err
			}
			res, err := schedule.Compute(in, computeOptions()...)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check durations, dependency integrity, acyclicity and trade stacking",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadPlan()
			if err != nil {
				return err
			}
			res, err := schedule.Compute(in, computeOptions()...)
			if err != nil {
				return err
			}
			conflicts := schedule.Stacking(res)
			if flagJSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"valid":          len(conflicts) == 0,
					"tradeStacking":  conflicts,
					"totalConflicts": len(conflicts),
				})
			}
			printValidation(cmd.OutOrStdout(), res, conflicts)

			return nil
		},
	}
}

func delayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delay",
		Short: "Apply a duration delta to one cell and recompute end to end",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadPlan()
			if err != nil {
				return err
			}
			target, err := grid.ParseKey(flagCell)
			if err != nil {
				return fmt.Errorf("--cell: %w", err)
			}
			res, err := schedule.PropagateDelay(in, schedule.Delay{
				LocationIndex: target.Loc,
				WagonIndex:    target.Wag,
				DelayDays:     flagDays,
			}, computeOptions()...)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().StringVar(&flagCell, "cell", "", `Target cell key "i,j"`)
	cmd.Flags().Float64Var(&flagDays, "days", 0, "Duration delta in days (negative accelerates)")
	_ = cmd.MarkFlagRequired("cell")

	return cmd
}

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the canonical fingerprint of the computed schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadPlan()
			if err != nil {
				return err
			}
			res, err := schedule.Compute(in, computeOptions()...)
			if err != nil {
				return err
			}
			h, err := fingerprint.Result(res)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.String())

			return nil
		},
	}
}
