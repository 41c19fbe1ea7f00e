// Package forward implements dual-number tangent propagation behind the
// eval capability set.
package forward

import (
	"math"

	"github.com/katalvlaran/gradfuzz/eval"
	"github.com/katalvlaran/gradfuzz/expr"
)

// Dual is a first-order dual number: Real is the primal value, Tangent the
// directional derivative along the currently active seed direction.
type Dual struct {
	Real    float64
	Tangent float64
}

// Backend implements eval.Backend[Dual]. It is stateless; every operation
// is a pure function of its operands.
type Backend struct{}

// term multiplies a tangent by a local partial, treating an exact zero on
// either side as an absent term. Suppressing zero tangents keeps non-finite
// partials out of directions the operand does not depend on; suppressing
// zero partials keeps non-finite tangents out of operands the result does
// not depend on. The reverse tape applies the same rule to its adjoint
// products, so both engines resolve 0·∞ chain terms identically.
func term(t, partial float64) float64 {
	if t == 0 || partial == 0 {
		return 0
	}

	return t * partial
}

func (Backend) FromConstant(v float64) Dual { return Dual{Real: v} }
func (Backend) Zero() Dual { return Dual{} }

func (Backend) Negate(x Dual) Dual {
	return Dual{Real: -x.Real, Tangent: -x.Tangent}
}

func (Backend) Sin(x Dual) Dual {
	return Dual{Real: math.Sin(x.Real), Tangent: term(x.Tangent, math.Cos(x.Real))}
}

func (Backend) Cos(x Dual) Dual {
	return Dual{Real: math.Cos(x.Real), Tangent: term(x.Tangent, -math.Sin(x.Real))}
}

func (Backend) Tan(x Dual) Dual {
	c := math.Cos(x.Real)

	return Dual{Real: math.Tan(x.Real), Tangent: term(x.Tangent, 1/(c*c))}
}

func (Backend) Exp(x Dual) Dual {
	e := math.Exp(x.Real)

	return Dual{Real: e, Tangent: term(x.Tangent, e)}
}

func (Backend) Log(x Dual) Dual {
	return Dual{Real: math.Log(x.Real), Tangent: term(x.Tangent, 1/x.Real)}
}

func (Backend) Sqrt(x Dual) Dual {
	s := math.Sqrt(x.Real)

	return Dual{Real: s, Tangent: term(x.Tangent, 1/(2*s))}
}

func (Backend) Abs(x Dual) Dual {
	// The local partial is x/|x|: ±1 away from zero, NaN at zero, where
	// the derivative does not exist.
	return Dual{Real: math.Abs(x.Real), Tangent: term(x.Tangent, x.Real/math.Abs(x.Real))}
}

func (Backend) Add(x, y Dual) Dual {
	return Dual{Real: x.Real + y.Real, Tangent: x.Tangent + y.Tangent}
}

func (Backend) Sub(x, y Dual) Dual {
	return Dual{Real: x.Real - y.Real, Tangent: x.Tangent - y.Tangent}
}

func (Backend) Mul(x, y Dual) Dual {
	return Dual{
		Real:    x.Real * y.Real,
		Tangent: term(x.Tangent, y.Real) + term(y.Tangent, x.Real),
	}
}

func (Backend) Div(x, y Dual) Dual {
	return Dual{
		Real:    x.Real / y.Real,
		Tangent: term(x.Tangent, 1/y.Real) + term(y.Tangent, -x.Real/(y.Real*y.Real)),
	}
}

func (Backend) Pow(x, y Dual) Dual {
	v := math.Pow(x.Real, y.Real)

	return Dual{
		Real: v,
		Tangent: term(x.Tangent, y.Real*math.Pow(x.Real, y.Real-1)) +
			term(y.Tangent, v*math.Log(x.Real)),
	}
}

// Engine derives gradients by k single-direction passes.
type Engine struct{}

// New returns the forward-mode engine.
func New() Engine { return Engine{} }

// Name identifies the adapter in verdicts and reports.
func (Engine) Name() string { return "forward" }

// Derive evaluates e once per input with a unit tangent seeded on that
// input, assembling the full gradient. The value is taken from the last
// pass; every pass computes the identical primal.
func (Engine) Derive(e expr.Expr, inputs []float64) (eval.Result, error) {
	grad := make([]float64, len(inputs))

	if len(inputs) == 0 {
		out, err := eval.Evaluate[Dual](e, Backend{}, nil)
		if err != nil {
			return eval.Result{}, err
		}

		return eval.Result{Value: out.Real, Gradient: grad}, nil
	}

	var value float64
	for k := range inputs {
		bindings := make([]Dual, len(inputs))
		for i, v := range inputs {
			bindings[i] = Dual{Real: v}
		}
		bindings[k].Tangent = 1

		out, err := eval.Evaluate[Dual](e, Backend{}, bindings)
		if err != nil {
			return eval.Result{}, err
		}
		value = out.Real
		grad[k] = out.Tangent
	}

	return eval.Result{Value: value, Gradient: grad}, nil
}
