package expr

import "strconv"

// Infix renders e in parenthesized infix notation, the form used in failure
// reports: (sin(x0) * exp(x1)).
func Infix(e Expr) string {
	return string(e.render(make([]byte, 0, 64), false))
}

// SExpr renders e as an s-expression: (* (sin x0) (exp x1)).
func SExpr(e Expr) string {
	return string(e.render(make([]byte, 0, 64), true))
}

func (c Const) render(buf []byte, _ bool) []byte {
	return strconv.AppendFloat(buf, c.Value, 'g', -1, 64)
}

func (v Var) render(buf []byte, _ bool) []byte {
	buf = append(buf, 'x')

	return strconv.AppendInt(buf, int64(v.Index), 10)
}

func (u Unary) render(buf []byte, sexpr bool) []byte {
	if sexpr {
		buf = append(buf, '(')
		buf = append(buf, u.Op.String()...)
		buf = append(buf, ' ')
		buf = u.X.render(buf, sexpr)

		return append(buf, ')')
	}

	buf = append(buf, u.Op.String()...)
	buf = append(buf, '(')
	buf = u.X.render(buf, sexpr)

	return append(buf, ')')
}

func (b Binary) render(buf []byte, sexpr bool) []byte {
	buf = append(buf, '(')
	if sexpr {
		buf = append(buf, b.Op.String()...)
		buf = append(buf, ' ')
		buf = b.L.render(buf, sexpr)
		buf = append(buf, ' ')
		buf = b.R.render(buf, sexpr)
	} else {
		buf = b.L.render(buf, sexpr)
		buf = append(buf, ' ')
		buf = append(buf, b.Op.String()...)
		buf = append(buf, ' ')
		buf = b.R.render(buf, sexpr)
	}

	return append(buf, ')')
}

// String is the infix rendering; see Infix.
func (c Const) String() string { return Infix(c) }

// String is the infix rendering; see Infix.
func (v Var) String() string { return Infix(v) }

// String is the infix rendering; see Infix.
func (u Unary) String() string { return Infix(u) }

// String is the infix rendering; see Infix.
func (b Binary) String() string { return Infix(b) }
