package sqlq

import (
	"database/sql"

	"github.com/samber/lo"

	"github.com/maxshaw/sqlq/qb"
)

// Result is the cursor returned by execution. Row-returning statements
// carry a cursor; INSERT/UPDATE/DELETE carry the driver's sql.Result
// instead and yield no rows.
//
// The helpers drain and close the cursor; use each Result once.
type Result struct {
	rows *sql.Rows
	res  sql.Result
}

// Close releases the cursor. The helpers close it themselves; Close is
// for callers iterating by hand.
func (r *Result) Close() error {
	if r.rows == nil {
		return nil
	}
	return r.rows.Close()
}

// RowsAffected reports the affected-row count of a write statement.
func (r *Result) RowsAffected() (int64, error) {
	if r.res == nil {
		return 0, nil
	}
	return r.res.RowsAffected()
}

// LastInsertID reports the rowid generated by the last INSERT.
func (r *Result) LastInsertID() (int64, error) {
	if r.res == nil {
		return 0, nil
	}
	return r.res.LastInsertId()
}

// Value returns the first column of the first row, nil if there is none.
func (r *Result) Value() (any, error) {
	if r.rows == nil {
		return nil, nil
	}
	defer r.rows.Close()

	if !r.rows.Next() {
		return nil, r.rows.Err()
	}

	vals, err := scanValues(r.rows)
	if err != nil {
		return nil, err
	}
	return vals[0], nil
}

// Row returns the first row as a column/value map, nil if there is none.
func (r *Result) Row() (qb.H, error) {
	if r.rows == nil {
		return nil, nil
	}
	defer r.rows.Close()

	if !r.rows.Next() {
		return nil, r.rows.Err()
	}
	return scanRow(r.rows)
}

// List returns the first column of every row, in row order.
func (r *Result) List() ([]any, error) {
	if r.rows == nil {
		return nil, nil
	}
	defer r.rows.Close()

	var list []any
	for r.rows.Next() {
		vals, err := scanValues(r.rows)
		if err != nil {
			return nil, err
		}
		list = append(list, vals[0])
	}
	return list, r.rows.Err()
}

// All returns every row as a column/value map, in row order.
func (r *Result) All() ([]qb.H, error) {
	if r.rows == nil {
		return nil, nil
	}
	defer r.rows.Close()

	var all []qb.H
	for r.rows.Next() {
		row, err := scanRow(r.rows)
		if err != nil {
			return nil, err
		}
		all = append(all, row)
	}
	return all, r.rows.Err()
}

// Each invokes fn once per row without materializing the result set.
// Returning an error from fn stops the iteration and propagates it.
func (r *Result) Each(fn func(qb.H) error) error {
	if fn == nil {
		r.Close()
		return &QueryError{Op: "each", Underlying: ErrInvalidCallback}
	}
	if r.rows == nil {
		return nil
	}
	defer r.rows.Close()

	for r.rows.Next() {
		row, err := scanRow(r.rows)
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return r.rows.Err()
}

func scanValues(rows *sql.Rows) ([]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	vals := make([]any, len(cols))
	ptrs := lo.Map(vals, func(_ any, i int) any {
		return &vals[i]
	})

	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	// TEXT columns come back as []byte from some drivers.
	for i, v := range vals {
		if b, ok := v.([]byte); ok {
			vals[i] = string(b)
		}
	}
	return vals, nil
}

func scanRow(rows *sql.Rows) (qb.H, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	vals, err := scanValues(rows)
	if err != nil {
		return nil, err
	}

	row := make(qb.H, len(cols))
	for i, col := range cols {
		row[col] = vals[i]
	}
	return row, nil
}

// Terminal forms of the result helpers: execute the chain, then apply
// the helper to its cursor.

func (b *Builder) Value() (any, error) {
	r, err := b.Exec()
	if err != nil {
		return nil, err
	}
	return r.Value()
}

func (b *Builder) Row() (qb.H, error) {
	r, err := b.Exec()
	if err != nil {
		return nil, err
	}
	return r.Row()
}

func (b *Builder) List() ([]any, error) {
	r, err := b.Exec()
	if err != nil {
		return nil, err
	}
	return r.List()
}

func (b *Builder) All() ([]qb.H, error) {
	r, err := b.Exec()
	if err != nil {
		return nil, err
	}
	return r.All()
}

// Each rejects a nil callback before anything reaches the database.
func (b *Builder) Each(fn func(qb.H) error) error {
	if fn == nil {
		return &QueryError{Op: "each", Underlying: ErrInvalidCallback}
	}
	r, err := b.Exec()
	if err != nil {
		return err
	}
	return r.Each(fn)
}
