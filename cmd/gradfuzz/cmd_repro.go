package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradfuzz/harness"
)

var reproCmd = &cobra.Command{
	Use:   "repro FILE",
	Short: "Re-run one saved input and print the full comparison",
	Long: `Replays a single byte stream (typically a failure-<id>.bin artifact)
in halt mode and prints every backend's result for the first
disagreement. Exits zero when the backends agree.`,
	Args: cobra.ExactArgs(1),
	RunE: runRepro,
}

func init() {
	rootCmd.AddCommand(reproCmd)
}

func runRepro(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	fc, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	fc.Mode = harness.ModeHalt.String()

	hcfg, err := fc.toHarness()
	if err != nil {
		return err
	}

	ctrl, err := harness.New(hcfg)
	if err != nil {
		return err
	}

	rep, runErr := ctrl.Run(data)
	if len(rep.Failures) == 0 {
		fmt.Printf("agreement: cases=%d skipped=%d\n", rep.Cases, rep.Skipped)

		return runErr
	}

	f := rep.Failures[0]
	fmt.Printf("case %d disagrees\n", f.Case)
	fmt.Printf("  expr   %s\n", f.Infix)
	fmt.Printf("  sexpr  %s\n", f.SExpr)
	fmt.Printf("  inputs %v\n", f.Inputs)
	for name, res := range f.Results {
		fmt.Printf("  %-12s value=%v gradient=%v\n", name, res.Value, res.Gradient)
	}
	for _, v := range f.Verdicts {
		fmt.Printf("  %s: abs=%g rel=%g\n", v.Check, v.MaxAbsDiff, v.MaxRelDiff)
	}

	return runErr
}
