package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradfuzz/harness"
)

var (
	runCorpus    string
	runRandom    int
	runSeed      int64
	runInputSize int
	runCases     int
	runMode      string
	runChecks    string
	runArtifacts string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fuzz the backends with generated or replayed byte streams",
	Long: `Runs the differential oracle over a stream source.

With --corpus the files of a directory are replayed in name order; this is
how externally minimized failing inputs get re-checked. Without it,
--random pseudo-random streams are generated from --seed, which makes a
full run reproducible from its command line.

Failing inputs are written to --artifacts as failure-<id>.bin (the raw
bytes, ready for "gradfuzz repro") next to a failure-<id>.txt triage
report.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runCorpus, "corpus", "", "directory of input files to replay")
	runCmd.Flags().IntVar(&runRandom, "random", 1000, "number of random streams when no corpus is given")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "seed for random stream generation")
	runCmd.Flags().IntVar(&runInputSize, "input-size", 176, "byte length of each random stream")
	runCmd.Flags().IntVar(&runCases, "cases", 0, "cases per input (overrides config)")
	runCmd.Flags().StringVar(&runMode, "mode", "", "halt or continuous (overrides config)")
	runCmd.Flags().StringVar(&runChecks, "checks", "", "comma-separated check list or \"all\" (overrides config)")
	runCmd.Flags().StringVar(&runArtifacts, "artifacts", "", "directory for failing inputs (overrides config)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	fc, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("cases") {
		fc.CasesPerInput = runCases
	}
	if cmd.Flags().Changed("mode") {
		fc.Mode = runMode
	}
	if cmd.Flags().Changed("checks") {
		fc.Checks = runChecks
	}
	if cmd.Flags().Changed("artifacts") {
		fc.ArtifactsDir = runArtifacts
	}

	hcfg, err := fc.toHarness()
	if err != nil {
		return err
	}

	ctrl, err := harness.New(hcfg)
	if err != nil {
		return err
	}

	streams, err := streamSource()
	if err != nil {
		return err
	}

	var failing int
	for i := 0; ; i++ {
		data, ok, err := streams()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		rep, err := ctrl.Run(data)
		if len(rep.Failures) > 0 {
			failing++
			if serr := saveArtifacts(fc.ArtifactsDir, data, rep.Failures); serr != nil {
				logger.Error("saving artifact", "err", serr)
			}
		}
		if err != nil {
			reportTotals(ctrl, failing)

			return fmt.Errorf("input %d: %w", i, err)
		}
	}

	reportTotals(ctrl, failing)
	if failing > 0 {
		return fmt.Errorf("%d failing input(s)", failing)
	}

	return nil
}

// streamSource returns an iterator over the configured input streams:
// corpus files in name order, or seeded random bytes.
func streamSource() (func() ([]byte, bool, error), error) {
	if runCorpus == "" {
		rng := rand.New(rand.NewSource(runSeed))
		n := 0

		return func() ([]byte, bool, error) {
			if n >= runRandom {
				return nil, false, nil
			}
			n++
			data := make([]byte, runInputSize)
			rng.Read(data)

			return data, true, nil
		}, nil
	}

	entries, err := os.ReadDir(runCorpus)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	i := 0

	return func() ([]byte, bool, error) {
		if i >= len(names) {
			return nil, false, nil
		}
		data, err := os.ReadFile(filepath.Join(runCorpus, names[i]))
		if err != nil {
			return nil, false, fmt.Errorf("reading corpus file: %w", err)
		}
		i++

		return data, true, nil
	}, nil
}

// saveArtifacts persists one failing input and its triage report under
// a fresh id, so later minimization never clobbers earlier finds.
func saveArtifacts(dir string, data []byte, failures []harness.Failure) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	id := uuid.NewString()

	bin := filepath.Join(dir, "failure-"+id+".bin")
	if err := os.WriteFile(bin, data, 0o644); err != nil {
		return err
	}

	var b strings.Builder
	for _, f := range failures {
		fmt.Fprintf(&b, "case %d\n", f.Case)
		fmt.Fprintf(&b, "  expr   %s\n", f.Infix)
		fmt.Fprintf(&b, "  sexpr  %s\n", f.SExpr)
		fmt.Fprintf(&b, "  inputs %v\n", f.Inputs)
		for name, res := range f.Results {
			fmt.Fprintf(&b, "  %-12s value=%v gradient=%v\n", name, res.Value, res.Gradient)
		}
		for _, v := range f.Verdicts {
			fmt.Fprintf(&b, "  %s: abs=%g rel=%g\n", v.Check, v.MaxAbsDiff, v.MaxRelDiff)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "failure-"+id+".txt"), []byte(b.String()), 0o644); err != nil {
		return err
	}

	logger.Info("failure saved", "file", bin)

	return nil
}

func reportTotals(ctrl *harness.Controller, failing int) {
	cases, skipped, failures := ctrl.Totals()
	logger.Info("run complete",
		"cases", cases,
		"skipped", skipped,
		"failed_cases", failures,
		"failing_inputs", failing)
	fmt.Printf("cases=%d skipped=%d failed=%d\n", cases, skipped, failures)
}
