package sqlq

import (
	"fmt"
)

// Exec compiles and runs the chain, consuming it. With no active chain a
// leading string argument is passed straight through to the handle as
// raw SQL — the escape hatch for statements the builder cannot express.
func (b *Builder) Exec(raw ...any) (*Result, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.db == nil {
		return nil, &QueryError{Op: "exec", Underlying: errNoHandle}
	}

	if b.stmt == nil {
		if len(raw) < 1 {
			return nil, &QueryError{Op: "exec", Underlying: ErrNoActiveChain}
		}
		sq, ok := raw[0].(string)
		if !ok {
			return nil, &QueryError{Op: "exec", Underlying: fmt.Errorf("raw query must be a string, got %T", raw[0])}
		}
		return b.db.Query(sq, raw[1:]...)
	}

	k := b.stmt.kind

	sq, args, err := b.ToSQL()
	if err != nil {
		return nil, err
	}

	if k == kindSelect {
		return b.db.Query(sq, args...)
	}

	res, err := b.db.exec.Exec(sq, args...)
	if err != nil {
		return nil, err
	}
	return &Result{res: res}, nil
}
