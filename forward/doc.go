// Package forward is the forward-mode (tangent propagation) backend
// adapter.
//
// Overview:
//
//   - Values are dual numbers: a primal Real part and a Tangent part
//     carrying the directional derivative alongside every operation.
//   - Engine.Derive runs one independent pass per input variable, seeding a
//     unit tangent on that variable only, and collects the k directional
//     derivatives into the full gradient. k passes over a tree of size n
//     cost O(k·n); for the small trees the generator emits this is cheaper
//     than carrying a k-wide tangent vector through every node.
//
// Non-finite behavior:
//
//	Domain-invalid operations yield NaN/±Inf in the Real part, and local
//	partials may be non-finite as well. A chain-rule term with an exactly
//	zero factor on either side (zero tangent or zero partial) is dropped
//	rather than multiplied out: an inactive direction is not poisoned by a
//	non-finite partial it does not depend on, and a non-finite tangent is
//	not multiplied into an operand the result does not depend on. The
//	reverse adapter applies the identical rule to its adjoint products.
package forward
