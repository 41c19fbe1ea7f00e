package oracle

import (
	"math"

	"github.com/katalvlaran/gradfuzz/eval"
)

// Compare judges agreement of two derivative results for the same
// expression and inputs. Neither argument is mutated; diagnostics are
// computed whether or not the check passes.
//
// Gradients of different lengths cannot come from the same test case; such
// a pair fails outright with infinite diffs.
func Compare(a, b eval.Result, kind CheckKind, opts ...Option) Verdict {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := Verdict{Check: kind, Passed: true}

	if len(a.Gradient) != len(b.Gradient) {
		v.Passed = false
		v.MaxAbsDiff = math.Inf(1)
		v.MaxRelDiff = math.Inf(1)

		return v
	}

	compareComponent(&v, a.Value, b.Value, o)
	for i := range a.Gradient {
		compareComponent(&v, a.Gradient[i], b.Gradient[i], o)
	}

	return v
}

// compareComponent folds one component pair into the verdict.
func compareComponent(v *Verdict, x, y float64, o Options) {
	xf, yf := isFinite(x), isFinite(y)

	if xf && yf {
		diff := math.Abs(x - y)
		scale := math.Max(math.Abs(x), math.Abs(y))

		if diff > v.MaxAbsDiff {
			v.MaxAbsDiff = diff
		}
		if scale > 0 && diff/scale > v.MaxRelDiff {
			v.MaxRelDiff = diff / scale
		}

		if diff > o.AbsTolerance && diff > o.RelTolerance*scale {
			v.Passed = false
		}

		return
	}

	// At least one side is non-finite: match by policy, not arithmetic.
	if !nonFiniteMatch(x, y, o.NonFinite) {
		v.Passed = false
		v.MaxAbsDiff = math.Inf(1)
		v.MaxRelDiff = math.Inf(1)
	}
}

// nonFiniteMatch reports whether a component pair with at least one
// non-finite side counts as consistent.
func nonFiniteMatch(x, y float64, p NonFinitePolicy) bool {
	xf, yf := isFinite(x), isFinite(y)
	if xf || yf {
		// One side finite, one not: inconsistent under any policy.
		return false
	}

	if p == LenientNonFinite {
		return true
	}

	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}

	// Both infinite: signs must agree.
	return math.Signbit(x) == math.Signbit(y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
