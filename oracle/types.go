// Package oracle: check kinds, tolerances, and the verdict shape.
package oracle

import "errors"

// Sentinel errors used by option validation.
var (
	// ErrBadTolerance indicates a negative tolerance was supplied.
	ErrBadTolerance = errors.New("oracle: tolerance must be non-negative")
)

// CheckKind names one pairwise comparison between backends.
type CheckKind int

const (
	// RevVsFwd compares reverse-mode against forward-mode: the internal
	// consistency check that needs no reference engine.
	RevVsFwd CheckKind = iota

	// RevVsGT compares reverse-mode against the ground-truth baseline.
	RevVsGT

	// FwdVsGT compares forward-mode against the ground-truth baseline.
	FwdVsGT
)

var checkNames = [...]string{"rev_vs_fwd", "rev_vs_gt", "fwd_vs_gt"}

// String returns the short name used in reports and configuration.
func (k CheckKind) String() string {
	if k < RevVsFwd || int(k) >= len(checkNames) {
		return "check(?)"
	}

	return checkNames[k]
}

// NonFinitePolicy selects how non-finite components are matched. Which
// patterns count as "consistent" is policy rather than a hard invariant,
// so it is configurable.
type NonFinitePolicy int

const (
	// StrictNonFinite requires the same kind and sign: NaN matches only
	// NaN, +Inf only +Inf, -Inf only -Inf. The default.
	StrictNonFinite NonFinitePolicy = iota

	// LenientNonFinite accepts any pairing of non-finite components, e.g.
	// NaN against -Inf.
	LenientNonFinite
)

// Verdict is the outcome of one comparison.
//
// Check       – which pair of backends was compared.
// Passed      – true when every component agreed under the tolerances.
// MaxAbsDiff  – largest absolute component difference (Inf on a non-finite
//
//	mismatch, including a gradient length mismatch).
//
// MaxRelDiff  – largest relative component difference.
type Verdict struct {
	Check      CheckKind
	Passed     bool
	MaxAbsDiff float64
	MaxRelDiff float64
}

// Options holds the comparison tolerances and the non-finite policy.
type Options struct {
	AbsTolerance float64
	RelTolerance float64
	NonFinite    NonFinitePolicy
}

// Option is a functional option for Compare.
type Option func(*Options)

// WithAbsTolerance overrides the absolute tolerance. Negative panics.
func WithAbsTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.AbsTolerance = tol
	}
}

// WithRelTolerance overrides the relative tolerance. Negative panics.
func WithRelTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.RelTolerance = tol
	}
}

// WithNonFinitePolicy selects strict or lenient non-finite matching.
func WithNonFinitePolicy(p NonFinitePolicy) Option {
	return func(o *Options) { o.NonFinite = p }
}

// DefaultOptions returns the baseline tolerances: 1e-6 absolute, 1e-4
// relative, strict non-finite matching.
func DefaultOptions() Options {
	return Options{
		AbsTolerance: 1e-6,
		RelTolerance: 1e-4,
		NonFinite:    StrictNonFinite,
	}
}
