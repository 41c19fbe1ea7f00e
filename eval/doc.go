// Package eval defines the numeric capability set every derivative backend
// must expose, and the single generic tree walk instantiated against it.
//
// Overview:
//
//   - Backend[T] is the fixed operation vocabulary: constants, zero, the
//     eight unary and five binary operations of the expression model. Any
//     type satisfying it — dual numbers, tape entries, plain float64 — can
//     be driven by the same evaluator.
//   - Evaluate performs one post-order traversal: leaves resolve to a
//     binding or a backend constant, internal nodes apply the matching
//     backend operation to their already-evaluated children. It is written
//     once and knows nothing about differentiation; seeding tangents or
//     tape entries and extracting gradients is each adapter's business.
//   - Result is the shape every adapter reduces to after a full evaluation:
//     the scalar value at the root plus one partial derivative per input.
//   - Engine is the adapter surface the oracle and harness consume: a named
//     backend that turns (expression, inputs) into a Result.
//
// Non-finite values:
//
//	Domain-invalid operations (log of a non-positive value, division by
//	zero) must produce NaN or ±Inf, never panic. The evaluator does not
//	special-case them; they flow through mechanically and the oracle
//	judges whether the backends disagree about them.
//
// Errors (sentinel):
//
//   - ErrUnboundVariable if a Var index falls outside the bindings. This is
//     a contract violation between generator and test-case construction,
//     not a recoverable runtime condition.
//   - ErrNilExpression for a nil tree.
package eval
