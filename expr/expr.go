package expr

import "sort"

// Expr is a node in an immutable expression tree.
//
// The four implementations are Const, Var, Unary and Binary. Consumers
// type-switch over them; the interface itself only exposes the pure
// structural queries shared by all node kinds.
type Expr interface {
	// Depth returns the maximum nesting from this node down to any leaf.
	// A leaf has depth 0.
	Depth() int

	// collectVars records every distinct Var index under this node.
	collectVars(seen map[int]struct{})

	// render appends this node's infix (sexpr=false) or s-expression
	// (sexpr=true) form to buf.
	render(buf []byte, sexpr bool) []byte
}

// Const is a float64 literal leaf.
type Const struct {
	// Value is the literal constant.
	Value float64

	// Tag is an opaque diagnostic payload; nil unless a caller attached one.
	Tag any
}

// Var is a leaf referencing an input slot.
//
// Index must be < the number of inputs of the enclosing test case; the bound
// is enforced by the evaluator, not by the node.
type Var struct {
	Index int
	Tag   any
}

// Unary applies a UnaryOp to a single child expression.
type Unary struct {
	Op  UnaryOp
	X   Expr
	Tag any
}

// Binary applies a BinaryOp to a left and right child expression.
type Binary struct {
	Op   BinaryOp
	L, R Expr
	Tag  any
}

// C builds a Const leaf.
func C(v float64) Const { return Const{Value: v} }

// V builds a Var leaf referencing input slot i.
func V(i int) Var { return Var{Index: i} }

// Un builds a Unary node applying op to x.
func Un(op UnaryOp, x Expr) Unary { return Unary{Op: op, X: x} }

// Bin builds a Binary node applying op to l and r.
func Bin(op BinaryOp, l, r Expr) Binary { return Binary{Op: op, L: l, R: r} }

// Depth of a leaf is zero.
func (Const) Depth() int { return 0 }

// Depth of a leaf is zero.
func (Var) Depth() int { return 0 }

// Depth returns one more than the child's depth.
func (u Unary) Depth() int { return 1 + u.X.Depth() }

// Depth returns one more than the deeper child's depth.
func (b Binary) Depth() int {
	dl, dr := b.L.Depth(), b.R.Depth()
	if dr > dl {
		dl = dr
	}

	return 1 + dl
}

func (Const) collectVars(map[int]struct{}) {}
func (v Var) collectVars(seen map[int]struct{}) { seen[v.Index] = struct{}{} }
func (u Unary) collectVars(seen map[int]struct{}) { u.X.collectVars(seen) }
func (b Binary) collectVars(seen map[int]struct{}) {
	b.L.collectVars(seen)
	b.R.collectVars(seen)
}

// VarIndices returns the distinct Var indices appearing in e, ascending.
// An expression without variables yields an empty (non-nil) slice.
func VarIndices(e Expr) []int {
	seen := make(map[int]struct{})
	e.collectVars(seen)

	idx := make([]int, 0, len(seen))
	for i := range seen {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	return idx
}

// NumInputs returns the minimal input-slot count that makes every Var in e
// valid: one past the largest index, or zero if e has no variables.
func NumInputs(e Expr) int {
	n := 0
	for _, i := range VarIndices(e) {
		if i+1 > n {
			n = i + 1
		}
	}

	return n
}

// Equal reports structural equality of two expressions.
// Tags are deliberately ignored: determinism checks must not depend on
// diagnostic payloads.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Const:
		y, ok := b.(Const)

		// NaN constants never occur in generated trees, so == suffices.
		return ok && x.Value == y.Value
	case Var:
		y, ok := b.(Var)

		return ok && x.Index == y.Index
	case Unary:
		y, ok := b.(Unary)

		return ok && x.Op == y.Op && Equal(x.X, y.X)
	case Binary:
		y, ok := b.(Binary)

		return ok && x.Op == y.Op && Equal(x.L, y.L) && Equal(x.R, y.R)
	default:
		return false
	}
}

// Size returns the total node count of e.
func Size(e Expr) int {
	switch x := e.(type) {
	case Unary:
		return 1 + Size(x.X)
	case Binary:
		return 1 + Size(x.L) + Size(x.R)
	default:
		return 1
	}
}
