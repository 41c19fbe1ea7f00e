// Package reverse is the reverse-mode (tape/adjoint) backend adapter.
//
// Overview:
//
//   - Values are handles into a tape owned by the backend instance. The
//     forward sweep — the generic evaluator walking the expression — records
//     one tape node per operation: its primal value, its operand handles,
//     and the local partial derivative with respect to each operand.
//   - After the root is evaluated, a single backward sweep seeds the root
//     adjoint with 1 and pushes adjoints down the tape in reverse
//     construction order (which is a topological order by construction).
//     Every input variable's adjoint is then its partial derivative, so one
//     forward pass plus one backward pass yields the full gradient
//     regardless of input count.
//
// Non-finite behavior:
//
//	Domain-invalid operations record NaN/±Inf primal values and partials
//	on the tape; the backward sweep multiplies them out mechanically. An
//	adjoint product with an exactly zero factor on either side (zero
//	adjoint or zero local partial) contributes nothing, the identical
//	rule the forward adapter applies to its tangent products.
//
// A Backend and its tape are single-use and not safe for concurrent
// evaluation; Engine.Derive builds a fresh tape per call.
package reverse
