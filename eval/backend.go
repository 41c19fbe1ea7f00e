package eval

// Backend is the fixed numeric capability set a derivative engine exposes.
//
// T is the backend's self-contained numeric representation: a dual number
// for forward mode, a tape handle for reverse mode, a plain float64 for
// value-only arithmetic. The evaluator never inspects T; it only threads
// values through these operations.
//
// Implementations must propagate NaN/±Inf through every operation rather
// than panicking on domain errors.
type Backend[T any] interface {
	// FromConstant lifts a literal into the backend representation.
	// The result carries no derivative information.
	FromConstant(v float64) T

	// Zero is the additive identity, equivalent to FromConstant(0).
	Zero() T

	Negate(x T) T
	Sin(x T) T
	Cos(x T) T
	Tan(x T) T
	Exp(x T) T
	Log(x T) T
	Sqrt(x T) T
	Abs(x T) T

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Div(x, y T) T
	Pow(x, y T) T
}
