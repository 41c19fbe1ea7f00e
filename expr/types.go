// Package expr: operator vocabularies shared by the generator, the
// evaluator, and every backend adapter.
package expr

// UnaryOp enumerates the single-operand operations an expression may use.
type UnaryOp int

const (
	// Neg is arithmetic negation, -x.
	Neg UnaryOp = iota

	// Sin is the sine of x (radians).
	Sin

	// Cos is the cosine of x (radians).
	Cos

	// Tan is the tangent of x (radians).
	Tan

	// Exp is the natural exponential, e^x.
	Exp

	// Log is the natural logarithm; non-positive arguments yield NaN/-Inf
	// at evaluation time rather than an error.
	Log

	// Sqrt is the square root; negative arguments yield NaN.
	Sqrt

	// Abs is the absolute value.
	Abs
)

// unaryNames is indexed by UnaryOp.
var unaryNames = [...]string{"neg", "sin", "cos", "tan", "exp", "log", "sqrt", "abs"}

// String returns the lowercase mnemonic of the operator.
func (op UnaryOp) String() string {
	if op < Neg || int(op) >= len(unaryNames) {
		return "unary(?)"
	}

	return unaryNames[op]
}

// BinaryOp enumerates the two-operand operations an expression may use.
type BinaryOp int

const (
	// Add is x + y.
	Add BinaryOp = iota

	// Sub is x - y.
	Sub

	// Mul is x * y.
	Mul

	// Div is x / y; division by zero yields ±Inf or NaN at evaluation time.
	Div

	// Pow is x raised to y, with math.Pow edge-case semantics.
	Pow
)

// binaryNames is indexed by BinaryOp.
var binaryNames = [...]string{"+", "-", "*", "/", "^"}

// String returns the infix symbol of the operator.
func (op BinaryOp) String() string {
	if op < Add || int(op) >= len(binaryNames) {
		return "binary(?)"
	}

	return binaryNames[op]
}
