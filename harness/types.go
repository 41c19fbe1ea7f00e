// Package harness: run configuration, report shapes, and sentinel errors.
package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gradfuzz/eval"
	"github.com/katalvlaran/gradfuzz/gen"
	"github.com/katalvlaran/gradfuzz/oracle"
)

// Sentinel errors returned by New and Run.
var (
	// ErrNoChecks indicates Config.Checks is empty; a harness that
	// compares nothing finds nothing.
	ErrNoChecks = errors.New("harness: at least one oracle check is required")

	// ErrBadCaseCount indicates Config.CasesPerInput is less than one.
	ErrBadCaseCount = errors.New("harness: CasesPerInput must be positive")

	// ErrBadCheck indicates an unknown oracle check name in ParseChecks.
	ErrBadCheck = errors.New("harness: unknown oracle check")

	// ErrBadMode indicates an unknown run mode name in ParseMode.
	ErrBadMode = errors.New("harness: unknown run mode")

	// ErrOracleMismatch is returned by Run in ModeHalt when a verdict
	// fails; the Report still carries the recorded Failure.
	ErrOracleMismatch = errors.New("harness: backends disagree beyond tolerance")
)

// Mode selects the failure policy of a run.
type Mode int

const (
	// ModeHalt stops the whole run at the first failed verdict.
	ModeHalt Mode = iota

	// ModeContinuous records failures and keeps processing cases.
	ModeContinuous
)

var modeNames = [...]string{"halt", "continuous"}

// String returns the mode's configuration name.
func (m Mode) String() string {
	if m < ModeHalt || int(m) >= len(modeNames) {
		return "mode(?)"
	}

	return modeNames[m]
}

// ParseMode maps a configuration string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "halt", "":
		return ModeHalt, nil
	case "continuous":
		return ModeContinuous, nil
	default:
		return ModeHalt, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// ParseChecks maps a comma-separated selection ("all", "rev_vs_fwd",
// "rev_vs_gt", "fwd_vs_gt") onto check kinds.
func ParseChecks(s string) ([]oracle.CheckKind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") || strings.TrimSpace(s) == "" {
		return []oracle.CheckKind{oracle.RevVsFwd, oracle.RevVsGT, oracle.FwdVsGT}, nil
	}

	var kinds []oracle.CheckKind
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "rev_vs_fwd":
			kinds = append(kinds, oracle.RevVsFwd)
		case "rev_vs_gt":
			kinds = append(kinds, oracle.RevVsGT)
		case "fwd_vs_gt":
			kinds = append(kinds, oracle.FwdVsGT)
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadCheck, part)
		}
	}

	return kinds, nil
}

// Config enumerates every recognized harness option.
//
// Checks        – nonempty subset of oracle checks to run per case.
// CasesPerInput – expressions generated per external byte stream.
// Mode          – failure policy, halt or continuous.
// Generator     – structural bounds and operator gates for generation.
// Oracle        – comparison tolerances and non-finite policy.
// Logger        – optional; nil logs nowhere.
type Config struct {
	Checks        []oracle.CheckKind
	CasesPerInput int
	Mode          Mode
	Generator     gen.Config
	Oracle        oracle.Options
	Logger        *slog.Logger
}

// DefaultConfig runs all three checks, one case per input, halting on the
// first failure, with default generator bounds and tolerances.
func DefaultConfig() Config {
	return Config{
		Checks:        []oracle.CheckKind{oracle.RevVsFwd, oracle.RevVsGT, oracle.FwdVsGT},
		CasesPerInput: 1,
		Mode:          ModeHalt,
		Generator:     gen.DefaultConfig(),
		Oracle:        oracle.DefaultOptions(),
	}
}

// Failure captures one disagreeing test case with everything needed to
// reproduce and triage it.
type Failure struct {
	// Case is the zero-based case number within the run.
	Case int

	// Infix and SExpr are the two renderings of the offending expression.
	Infix string
	SExpr string

	// Inputs are the decoded input values the backends evaluated at.
	Inputs []float64

	// Results holds each involved backend's output, keyed by engine name.
	Results map[string]eval.Result

	// Verdicts are the failed comparisons only.
	Verdicts []oracle.Verdict
}

// Report summarizes one Run.
type Report struct {
	// Cases is the number of test cases attempted.
	Cases int

	// Skipped counts cases abandoned for lack of entropy (plus all cases
	// of an input whose value bytes were unusable).
	Skipped int

	// Failures lists every recorded disagreement. In ModeHalt it holds at
	// most one entry.
	Failures []Failure
}
