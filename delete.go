package sqlq

import (
	"strings"

	"github.com/maxshaw/sqlq/qb"
)

// Delete turns the chain into a DELETE.
func (b *Builder) Delete() *Builder {
	if !b.active("delete") {
		return b
	}
	b.stmt.kind = kindDelete
	return b
}

// Truncate turns the chain into a TRUNCATE TABLE statement. SQLite itself
// rejects TRUNCATE; the statement is handed to the engine as-is.
func (b *Builder) Truncate() *Builder {
	if !b.active("truncate") {
		return b
	}
	b.stmt.kind = kindTruncate
	return b
}

func (s *stmt) deleteSQL() (string, []any, error) {
	cond, args, err := qb.Build("AND", s.exprs...)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder

	sb.WriteString("DELETE FROM ")
	sb.WriteString(s.table)

	if cond != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(cond)
	}

	return sb.String(), args, nil
}

func (s *stmt) truncateSQL() (string, []any, error) {
	return "TRUNCATE TABLE " + s.table, nil, nil
}
