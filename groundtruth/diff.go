// Package groundtruth: the symbolic differentiation kernel.
package groundtruth

import (
	"fmt"

	"github.com/katalvlaran/gradfuzz/expr"
)

// Differentiate returns the derivative of e with respect to input variable
// index, as a new expression tree. The input tree is never modified.
//
// Trees are lightly simplified on the way out: additive zero terms and
// multiplicative zero/one factors produced by the chain rule are folded
// away, keeping derivative trees near the size of their source.
func Differentiate(e expr.Expr, index int) (expr.Expr, error) {
	switch x := e.(type) {
	case expr.Const:
		return expr.C(0), nil

	case expr.Var:
		if x.Index == index {
			return expr.C(1), nil
		}

		return expr.C(0), nil

	case expr.Unary:
		du, err := Differentiate(x.X, index)
		if err != nil {
			return nil, err
		}

		return diffUnary(x.Op, x.X, du)

	case expr.Binary:
		du, err := Differentiate(x.L, index)
		if err != nil {
			return nil, err
		}
		dv, err := Differentiate(x.R, index)
		if err != nil {
			return nil, err
		}

		return diffBinary(x.Op, x.L, x.R, du, dv)

	default:
		return nil, fmt.Errorf("groundtruth: unknown node type %T", e)
	}
}

func diffUnary(op expr.UnaryOp, u, du expr.Expr) (expr.Expr, error) {
	switch op {
	case expr.Neg:
		return neg(du), nil
	case expr.Sin:
		return mul(expr.Un(expr.Cos, u), du), nil
	case expr.Cos:
		return neg(mul(expr.Un(expr.Sin, u), du)), nil
	case expr.Tan:
		c := expr.Un(expr.Cos, u)

		return div(du, mul(c, c)), nil
	case expr.Exp:
		return mul(expr.Un(expr.Exp, u), du), nil
	case expr.Log:
		return div(du, u), nil
	case expr.Sqrt:
		return div(du, mul(expr.C(2), expr.Un(expr.Sqrt, u))), nil
	case expr.Abs:
		// u/|u| is the sign away from zero, NaN at zero, matching the
		// engines' local partial for abs.
		return mul(div(u, expr.Un(expr.Abs, u)), du), nil
	default:
		return nil, fmt.Errorf("groundtruth: unknown unary op %d", op)
	}
}

func diffBinary(op expr.BinaryOp, u, v, du, dv expr.Expr) (expr.Expr, error) {
	switch op {
	case expr.Add:
		return add(du, dv), nil
	case expr.Sub:
		return sub(du, dv), nil
	case expr.Mul:
		return add(mul(du, v), mul(u, dv)), nil
	case expr.Div:
		// du/v - dv·u/v², term by term like the engines' partials.
		return sub(div(du, v), div(mul(dv, u), mul(v, v))), nil
	case expr.Pow:
		// d(u^v) = du·v·u^(v-1) + dv·u^v·ln(u).
		left := mul(du, mul(v, expr.Bin(expr.Pow, u, sub(v, expr.C(1)))))
		right := mul(dv, mul(expr.Bin(expr.Pow, u, v), expr.Un(expr.Log, u)))

		return add(left, right), nil
	default:
		return nil, fmt.Errorf("groundtruth: unknown binary op %d", op)
	}
}

// Folding constructors. Dropping literal-zero terms mirrors the engines'
// zero-tangent/zero-adjoint skipping, so non-finite factors attached to
// inactive terms vanish identically in all backends.

func isZero(e expr.Expr) bool {
	c, ok := e.(expr.Const)

	return ok && c.Value == 0
}

func isOne(e expr.Expr) bool {
	c, ok := e.(expr.Const)

	return ok && c.Value == 1
}

func neg(e expr.Expr) expr.Expr {
	if isZero(e) {
		return expr.C(0)
	}

	return expr.Un(expr.Neg, e)
}

func add(a, b expr.Expr) expr.Expr {
	if isZero(a) {
		return b
	}
	if isZero(b) {
		return a
	}

	return expr.Bin(expr.Add, a, b)
}

func sub(a, b expr.Expr) expr.Expr {
	if isZero(b) {
		return a
	}
	if isZero(a) {
		return neg(b)
	}

	return expr.Bin(expr.Sub, a, b)
}

func mul(a, b expr.Expr) expr.Expr {
	if isZero(a) || isZero(b) {
		return expr.C(0)
	}
	if isOne(a) {
		return b
	}
	if isOne(b) {
		return a
	}

	return expr.Bin(expr.Mul, a, b)
}

func div(a, b expr.Expr) expr.Expr {
	if isZero(a) {
		return expr.C(0)
	}
	if isOne(b) {
		return a
	}

	return expr.Bin(expr.Div, a, b)
}
