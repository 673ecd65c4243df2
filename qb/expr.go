package qb

import "errors"

type Expr interface {
	Sub() bool
	Build() (string, []any, error)
}

type WhereExpr struct {
	col     string
	args    []any
	op, raw string

	executor func() (string, []any, error)
}

func (w WhereExpr) String() string {
	return w.raw
}

func (w WhereExpr) Sub() bool {
	return false
}

func (w WhereExpr) Build() (cond string, args []any, err error) {
	if w.col != "" {
		if w.raw == "" {
			return w.col + " " + w.op + " ?", w.args, nil
		}
		return w.col + w.raw, w.args, nil
	}

	if w.executor != nil {
		return w.executor()
	}

	if w.raw == "" {
		return "", nil, errors.New("qb: empty expression")
	}
	return w.raw, w.args, nil
}

type subExpr struct {
	typ   string
	exprs []Expr
}

func (subExpr) Sub() bool {
	return true
}

func (e subExpr) Build() (string, []any, error) {
	return Build(e.typ, e.exprs...)
}
