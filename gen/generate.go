package gen

import (
	"github.com/katalvlaran/gradfuzz/expr"
)

// node-kind decision space: one byte reduced modulo kindRange, with the
// leaf share growing as the depth budget shrinks.
const kindRange = 8

// Generate maps data deterministically onto an expression tree obeying cfg.
//
// The stream is consumed incrementally from the front; bytes beyond what the
// tree needs are left untouched (callers may use them for input values).
// Returns ErrInsufficientEntropy when the stream ends mid-subtree, and the
// config sentinels for invalid bounds.
func Generate(data []byte, cfg Config) (expr.Expr, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := generator{s: stream{data: data}, cfg: cfg}

	return g.node(cfg.MaxDepth)
}

// Consumed returns how many leading bytes of data the generated tree used.
// It re-runs generation, which is cheap and exactly reproducible.
func Consumed(data []byte, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	g := generator{s: stream{data: data}, cfg: cfg}
	if _, err := g.node(cfg.MaxDepth); err != nil {
		return 0, err
	}

	return g.s.off, nil
}

type generator struct {
	s   stream
	cfg Config
}

// node emits one subtree with the given remaining depth budget.
func (g *generator) node(budget int) (expr.Expr, error) {
	if budget <= 0 {
		return g.leaf()
	}

	r, err := g.s.intn(kindRange)
	if err != nil {
		return nil, err
	}

	// leafCut grows as the budget shrinks: 2/8 leaves at budget ≥ 3,
	// 4/8 at budget 2, 6/8 at budget 1. Termination within MaxDepth is
	// guaranteed by the budget <= 0 check regardless of the odds.
	leafCut := kindRange - 2*budget
	if leafCut < 2 {
		leafCut = 2
	}

	switch {
	case r < leafCut:
		return g.leaf()
	case (r-leafCut)%2 == 0:
		return g.unary(budget)
	default:
		return g.binary(budget)
	}
}

// leaf emits a Var with probability 2/5, otherwise a Const drawn from a
// small bucket scheme biased toward arithmetically interesting values.
func (g *generator) leaf() (expr.Expr, error) {
	isVar, err := g.s.ratio(2, 5)
	if err != nil {
		return nil, err
	}

	if isVar {
		idx, err := g.s.intn(g.cfg.MaxVariables)
		if err != nil {
			return nil, err
		}

		return expr.V(idx), nil
	}

	bucket, err := g.s.intn(5)
	if err != nil {
		return nil, err
	}

	switch bucket {
	case 0:
		return expr.C(0), nil
	case 1:
		return expr.C(1), nil
	case 2:
		return expr.C(2), nil
	case 3:
		f, err := g.s.float64()
		if err != nil {
			return nil, err
		}

		return expr.C(clamp(f, -10, 10)), nil
	default:
		f, err := g.s.float64()
		if err != nil {
			return nil, err
		}
		if f < 0 {
			f = -f
		}

		return expr.C(clamp(f, 0.1, 5)), nil
	}
}

// unary draws an operator from the enabled unary set, then its child.
func (g *generator) unary(budget int) (expr.Expr, error) {
	ops := [...]expr.UnaryOp{expr.Neg, expr.Sin, expr.Cos, expr.Tan, expr.Exp, expr.Sqrt, expr.Abs, expr.Log}
	n := len(ops) - 1
	if g.cfg.AllowLog {
		n++
	}

	i, err := g.s.intn(n)
	if err != nil {
		return nil, err
	}

	child, err := g.node(budget - 1)
	if err != nil {
		return nil, err
	}

	return expr.Un(ops[i], child), nil
}

// binary draws an operator from the enabled binary set, then left and right
// children.
func (g *generator) binary(budget int) (expr.Expr, error) {
	ops := [...]expr.BinaryOp{expr.Add, expr.Sub, expr.Mul, expr.Div, expr.Pow}
	n := 3
	if g.cfg.AllowDivision {
		n++
	}
	// Pow sits after Div in the candidate list; with division disabled the
	// power slot shifts down so the draw space stays contiguous.
	enabled := ops[:n]
	if g.cfg.AllowPower {
		enabled = append(ops[:n:n], expr.Pow)
		n++
	}

	i, err := g.s.intn(n)
	if err != nil {
		return nil, err
	}

	left, err := g.node(budget - 1)
	if err != nil {
		return nil, err
	}

	right, err := g.node(budget - 1)
	if err != nil {
		return nil, err
	}

	return expr.Bin(enabled[i], left, right), nil
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}

	return f
}
