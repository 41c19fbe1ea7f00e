package groundtruth

import (
	"github.com/katalvlaran/gradfuzz/eval"
	"github.com/katalvlaran/gradfuzz/expr"
)

// Engine is the reference-baseline adapter.
type Engine struct{}

// New returns the ground-truth engine.
func New() Engine { return Engine{} }

// Name identifies the adapter in verdicts and reports.
func (Engine) Name() string { return "groundtruth" }

// Derive evaluates e with plain float64 arithmetic for the value, then
// differentiates symbolically per input and evaluates each derivative tree
// at the same point.
func (Engine) Derive(e expr.Expr, inputs []float64) (eval.Result, error) {
	value, err := eval.Evaluate[float64](e, eval.Scalar{}, inputs)
	if err != nil {
		return eval.Result{}, err
	}

	grad := make([]float64, len(inputs))
	for i := range inputs {
		d, err := Differentiate(e, i)
		if err != nil {
			return eval.Result{}, err
		}

		g, err := eval.Evaluate[float64](d, eval.Scalar{}, inputs)
		if err != nil {
			return eval.Result{}, err
		}
		grad[i] = g
	}

	return eval.Result{Value: value, Gradient: grad}, nil
}
