// Package eval: shared result shape, adapter surface, and sentinel errors.
package eval

import (
	"errors"

	"github.com/katalvlaran/gradfuzz/expr"
)

// Sentinel errors returned by Evaluate.
var (
	// ErrUnboundVariable indicates a Var index outside the provided
	// bindings. Upstream construction failed its own invariant; treat as a
	// harness defect, not a finding.
	ErrUnboundVariable = errors.New("eval: variable index outside bindings")

	// ErrNilExpression indicates a nil expression tree was passed in.
	ErrNilExpression = errors.New("eval: expression is nil")
)

// Result is the outcome of evaluating one expression against one backend
// and one input vector: the scalar value at the root and the partial
// derivative with respect to each input slot.
//
// len(Gradient) always equals the input count the adapter was asked for.
// Results are immutable once produced; the oracle only reads them.
type Result struct {
	Value    float64
	Gradient []float64
}

// Engine is a derivative-computing backend as the harness and oracle see
// it: a named adapter turning (expression, inputs) into a Result.
//
// Derive must be deterministic and side-effect free from the caller's view:
// the same expression and inputs yield a bit-identical Result every call.
type Engine interface {
	// Name identifies the adapter in verdicts and failure reports.
	Name() string

	// Derive evaluates e at inputs and returns the value and full gradient.
	// It returns an error only for contract violations (unbound variables);
	// numeric domain trouble surfaces as NaN/Inf in the Result instead.
	Derive(e expr.Expr, inputs []float64) (Result, error)
}
