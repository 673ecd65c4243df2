package sqlq

import (
	"github.com/maxshaw/sqlq/qb"
)

type kind int

const (
	kindSelect kind = iota
	kindUpdate
	kindDelete
	kindTruncate
	kindInsert
)

// stmt is the statement descriptor a chain accumulates. It is created by
// Table, mutated by the chained calls and consumed by ToSQL — one
// statement per chain, never reused.
type stmt struct {
	kind  kind
	table string

	cols  []string
	exprs []qb.Expr

	setCols []string
	setArgs []any

	order string
}

// Builder accumulates one statement at a time. Not safe for concurrent
// use; finish one chain before starting the next.
type Builder struct {
	db   *DB
	stmt *stmt
	err  error
}

// Table starts a detached chain. Useful for compiling SQL without a
// database handle; terminal calls that execute need DB.Table instead.
func Table(name string) *Builder {
	return &Builder{stmt: &stmt{table: name}}
}

// Table starts a chain bound to d.
func (d *DB) Table(name string) *Builder {
	return &Builder{db: d, stmt: &stmt{table: name}}
}

// active guards mutators. Once the descriptor is consumed the chain is
// dead: the first violation is recorded and surfaced by the terminal
// call, since fluent methods cannot return errors mid-chain.
func (b *Builder) active(op string) bool {
	if b.stmt != nil {
		return true
	}
	if b.err == nil {
		b.err = &QueryError{Op: op, Underlying: ErrNoActiveChain}
	}
	return false
}

// ToSQL compiles the chain into parameterized SQL plus its bound values,
// consuming the descriptor.
func (b *Builder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if b.stmt == nil {
		return "", nil, &QueryError{Op: "compile", Underlying: ErrNoActiveChain}
	}

	s := b.stmt
	b.stmt = nil

	var (
		sq   string
		args []any
		err  error
	)

	switch s.kind {
	case kindUpdate:
		sq, args, err = s.updateSQL()
	case kindDelete:
		sq, args, err = s.deleteSQL()
	case kindTruncate:
		sq, args, err = s.truncateSQL()
	case kindInsert:
		sq, args, err = s.insertSQL()
	default:
		sq, args, err = s.selectSQL()
	}

	if err != nil {
		return "", nil, &QueryError{Op: "compile", Table: s.table, Underlying: err}
	}

	debugf("[SQL] %s", sq)
	debugf("[SQL] %+v", args)

	return sq, args, nil
}
