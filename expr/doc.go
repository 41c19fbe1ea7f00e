// Package expr defines the immutable expression trees that every other
// gradfuzz component operates on.
//
// Overview:
//
//   - An Expr is a finite tree of four node kinds: Const (a float64
//     literal), Var (a reference to an input slot by index), Unary (one of
//     Neg, Sin, Cos, Tan, Exp, Log, Sqrt, Abs applied to a child), and
//     Binary (one of Add, Sub, Mul, Div, Pow applied to two children).
//   - Nodes are plain value types with no back-references, so cycles are
//     impossible by construction. Once built, a tree is never mutated;
//     evaluators walk it read-only any number of times.
//   - Every node carries an optional opaque Tag used only for diagnostics
//     (e.g. labeling a crashing subtree). Tags never influence evaluation,
//     structural equality, or rendering.
//
// Invariants:
//
//   - A Var index must be < the number of input slots of the enclosing test
//     case. The index bound is not known to the node itself, so it is
//     checked lazily at evaluation time, not at construction.
//   - Depth and VarIndices are pure queries; both run in O(size of tree).
//
// Renderings:
//
//   - String() renders infix notation, e.g. (sin(x0) * exp(x1)).
//   - SExpr() renders s-expressions, e.g. (* (sin x0) (exp x1)).
//
// Both renderings exist for failure reports: a disagreeing expression is
// printed structurally so it can be rebuilt by hand or replayed from the
// originating byte stream.
package expr
