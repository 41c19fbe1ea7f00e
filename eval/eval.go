package eval

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gradfuzz/expr"
)

// Evaluate walks e in post order against backend b.
//
// bindings maps each Var index to an initial backend-native value, already
// seeded for differentiation where the backend calls for it. The walk is
// pure with respect to the tree and the bindings; stateful backends (tapes)
// accumulate into their own storage.
//
// An out-of-range Var index returns ErrUnboundVariable wrapped with the
// offending index; per the harness contract this is a defect in test-case
// construction, never a property of the expression under test.
func Evaluate[T any](e expr.Expr, b Backend[T], bindings []T) (T, error) {
	var zero T
	if e == nil {
		return zero, ErrNilExpression
	}

	switch x := e.(type) {
	case expr.Const:
		return b.FromConstant(x.Value), nil

	case expr.Var:
		if x.Index < 0 || x.Index >= len(bindings) {
			return zero, fmt.Errorf("%w: x%d with %d bindings", ErrUnboundVariable, x.Index, len(bindings))
		}

		return bindings[x.Index], nil

	case expr.Unary:
		child, err := Evaluate(x.X, b, bindings)
		if err != nil {
			return zero, err
		}

		switch x.Op {
		case expr.Neg:
			return b.Negate(child), nil
		case expr.Sin:
			return b.Sin(child), nil
		case expr.Cos:
			return b.Cos(child), nil
		case expr.Tan:
			return b.Tan(child), nil
		case expr.Exp:
			return b.Exp(child), nil
		case expr.Log:
			return b.Log(child), nil
		case expr.Sqrt:
			return b.Sqrt(child), nil
		case expr.Abs:
			return b.Abs(child), nil
		default:
			return zero, fmt.Errorf("eval: unknown unary op %d", x.Op)
		}

	case expr.Binary:
		l, err := Evaluate(x.L, b, bindings)
		if err != nil {
			return zero, err
		}
		r, err := Evaluate(x.R, b, bindings)
		if err != nil {
			return zero, err
		}

		switch x.Op {
		case expr.Add:
			return b.Add(l, r), nil
		case expr.Sub:
			return b.Sub(l, r), nil
		case expr.Mul:
			return b.Mul(l, r), nil
		case expr.Div:
			return b.Div(l, r), nil
		case expr.Pow:
			return b.Pow(l, r), nil
		default:
			return zero, fmt.Errorf("eval: unknown binary op %d", x.Op)
		}

	default:
		return zero, fmt.Errorf("eval: unknown node type %T", e)
	}
}

// Scalar is the value-only Backend: plain float64 arithmetic with math
// package semantics, no derivative tracking. It backs value checks in tests
// and the numeric half of the ground-truth reference engine.
type Scalar struct{}

func (Scalar) FromConstant(v float64) float64 { return v }
func (Scalar) Zero() float64 { return 0 }
func (Scalar) Negate(x float64) float64 { return -x }
func (Scalar) Sin(x float64) float64 { return math.Sin(x) }
func (Scalar) Cos(x float64) float64 { return math.Cos(x) }
func (Scalar) Tan(x float64) float64 { return math.Tan(x) }
func (Scalar) Exp(x float64) float64 { return math.Exp(x) }
func (Scalar) Log(x float64) float64 { return math.Log(x) }
func (Scalar) Sqrt(x float64) float64 { return math.Sqrt(x) }
func (Scalar) Abs(x float64) float64 { return math.Abs(x) }
func (Scalar) Add(x, y float64) float64 { return x + y }
func (Scalar) Sub(x, y float64) float64 { return x - y }
func (Scalar) Mul(x, y float64) float64 { return x * y }
func (Scalar) Div(x, y float64) float64 { return x / y }
func (Scalar) Pow(x, y float64) float64 { return math.Pow(x, y) }
