package sqlq

import (
	"github.com/maxshaw/sqlq/qb"
)

// Where appends an equality filter, "col = ?".
func (b *Builder) Where(col string, val any) *Builder {
	return b.WhereExpr(qb.Eq(col, val))
}

// WhereOp appends "col <op> ?" for an arbitrary comparison operator.
func (b *Builder) WhereOp(col, op string, val any) *Builder {
	return b.WhereExpr(qb.Cmp(col, op, val))
}

// WhereRaw appends a raw SQL fragment with optional bound values.
func (b *Builder) WhereRaw(fragment string, args ...any) *Builder {
	return b.WhereExpr(qb.Raw(fragment, args...))
}

// WhereMap replaces every accumulated filter with one equality per key.
// Unlike the other Where variants it discards prior filters.
func (b *Builder) WhereMap(h qb.H) *Builder {
	if !b.active("where") {
		return b
	}

	exprs := make([]qb.Expr, 0, len(h))
	for _, col := range sortedKeys(h) {
		exprs = append(exprs, qb.Eq(col, h[col]))
	}
	b.stmt.exprs = exprs
	return b
}

// WhereExpr appends tagged filter expressions (qb.Like, qb.In, qb.Or, ...).
func (b *Builder) WhereExpr(a ...qb.Expr) *Builder {
	if !b.active("where") {
		return b
	}
	b.stmt.exprs = append(b.stmt.exprs, a...)
	return b
}
