package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gradfuzz/eval"
	"github.com/katalvlaran/gradfuzz/expr"
	"github.com/katalvlaran/gradfuzz/forward"
	"github.com/katalvlaran/gradfuzz/gen"
	"github.com/katalvlaran/gradfuzz/groundtruth"
	"github.com/katalvlaran/gradfuzz/oracle"
	"github.com/katalvlaran/gradfuzz/reverse"
)

// caseStride is the byte offset between the generation windows of
// consecutive cases within one input, so neighboring cases read different
// slices of the stream instead of regenerating the same tree.
const caseStride = 32

// Controller drives fuzz iterations for one configuration. Build it with
// New; the zero value is not usable. A Controller is not safe for
// concurrent Runs.
type Controller struct {
	cfg Config
	log *slog.Logger

	fwd eval.Engine
	rev eval.Engine
	gt  eval.Engine

	needFwd bool
	needRev bool
	needGT  bool

	totalCases    int
	totalSkipped  int
	totalFailures int
}

// New validates cfg and builds a Controller with all three backends
// wired. Only the backends the configured checks actually involve are
// exercised during Run.
func New(cfg Config) (*Controller, error) {
	if len(cfg.Checks) == 0 {
		return nil, ErrNoChecks
	}
	if cfg.CasesPerInput < 1 {
		return nil, ErrBadCaseCount
	}
	if cfg.Mode != ModeHalt && cfg.Mode != ModeContinuous {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(cfg.Mode))
	}
	if err := cfg.Generator.Validate(); err != nil {
		return nil, err
	}
	if cfg.Oracle.AbsTolerance < 0 || cfg.Oracle.RelTolerance < 0 {
		return nil, oracle.ErrBadTolerance
	}

	c := &Controller{
		cfg: cfg,
		log: cfg.Logger,
		fwd: forward.New(),
		rev: reverse.New(),
		gt:  groundtruth.New(),
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, k := range cfg.Checks {
		switch k {
		case oracle.RevVsFwd:
			c.needRev, c.needFwd = true, true
		case oracle.RevVsGT:
			c.needRev, c.needGT = true, true
		case oracle.FwdVsGT:
			c.needFwd, c.needGT = true, true
		default:
			return nil, fmt.Errorf("%w: %d", ErrBadCheck, int(k))
		}
	}

	return c, nil
}

// Totals reports the cumulative case, skip, and failure counts over every
// Run this Controller has performed.
func (c *Controller) Totals() (cases, skipped, failures int) {
	return c.totalCases, c.totalSkipped, c.totalFailures
}

// Run processes one external byte stream: the leading
// Generator.MaxVariables·8 bytes become input values, the remainder drives
// expression generation at a 32-byte stride per case.
//
// Skips (undecodable value bytes, streams exhausted mid-tree) are counted,
// never errors. The only error in ModeContinuous is an internal evaluation
// fault; ModeHalt additionally returns ErrOracleMismatch on the first
// failed verdict, with the Failure already recorded in the Report.
func (c *Controller) Run(data []byte) (Report, error) {
	var rep Report

	inputs, ok := decodeInputs(data, c.cfg.Generator.MaxVariables)
	if !ok {
		rep.Cases = c.cfg.CasesPerInput
		rep.Skipped = c.cfg.CasesPerInput
		c.totalCases += rep.Cases
		c.totalSkipped += rep.Skipped

		c.log.Debug("input skipped", "reason", "unusable value bytes", "len", len(data))

		return rep, nil
	}

	tree := data[c.cfg.Generator.MaxVariables*8:]

	for i := 0; i < c.cfg.CasesPerInput; i++ {
		rep.Cases++
		c.totalCases++

		off := i * caseStride
		if off > len(tree) {
			off = len(tree)
		}

		e, err := gen.Generate(tree[off:], c.cfg.Generator)
		if errors.Is(err, gen.ErrInsufficientEntropy) {
			rep.Skipped++
			c.totalSkipped++

			continue
		}
		if err != nil {
			return rep, err
		}

		results, err := c.evaluate(e, inputs[:expr.NumInputs(e)])
		if err != nil {
			return rep, err
		}

		verdicts := c.compare(results)
		if len(verdicts) == 0 {
			continue
		}

		f := Failure{
			Case:     i,
			Infix:    expr.Infix(e),
			SExpr:    expr.SExpr(e),
			Inputs:   inputs[:expr.NumInputs(e)],
			Results:  results,
			Verdicts: verdicts,
		}
		rep.Failures = append(rep.Failures, f)
		c.totalFailures++

		c.log.Warn("backends disagree",
			"case", i,
			"expr", f.Infix,
			"inputs", f.Inputs,
			"checks", len(verdicts))

		if c.cfg.Mode == ModeHalt {
			return rep, fmt.Errorf("%w: case %d: %s", ErrOracleMismatch, i, f.Infix)
		}
	}

	return rep, nil
}

// evaluate derives the expression on every backend the configured checks
// involve, keyed by engine name.
func (c *Controller) evaluate(e expr.Expr, inputs []float64) (map[string]eval.Result, error) {
	results := make(map[string]eval.Result, 3)

	engines := []struct {
		need bool
		eng  eval.Engine
	}{
		{c.needFwd, c.fwd},
		{c.needRev, c.rev},
		{c.needGT, c.gt},
	}

	for _, it := range engines {
		if !it.need {
			continue
		}

		res, err := it.eng.Derive(e, inputs)
		if err != nil {
			return nil, fmt.Errorf("harness: %s backend: %w", it.eng.Name(), err)
		}
		results[it.eng.Name()] = res
	}

	return results, nil
}

// compare runs every configured check against the evaluated results and
// returns the failed verdicts only.
func (c *Controller) compare(results map[string]eval.Result) []oracle.Verdict {
	opts := []oracle.Option{
		oracle.WithAbsTolerance(c.cfg.Oracle.AbsTolerance),
		oracle.WithRelTolerance(c.cfg.Oracle.RelTolerance),
		oracle.WithNonFinitePolicy(c.cfg.Oracle.NonFinite),
	}

	var failed []oracle.Verdict
	for _, k := range c.cfg.Checks {
		var a, b eval.Result

		switch k {
		case oracle.RevVsFwd:
			a, b = results[c.rev.Name()], results[c.fwd.Name()]
		case oracle.RevVsGT:
			a, b = results[c.rev.Name()], results[c.gt.Name()]
		case oracle.FwdVsGT:
			a, b = results[c.fwd.Name()], results[c.gt.Name()]
		}

		if v := oracle.Compare(a, b, k, opts...); !v.Passed {
			failed = append(failed, v)
		}
	}

	return failed
}
