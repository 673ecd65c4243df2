package sqlq

import (
	"errors"
	"strings"

	"github.com/maxshaw/sqlq/qb"
)

// Insert turns the chain into an INSERT of the given column/value pairs.
// Columns compile in lexical order; values stay aligned with them.
func (b *Builder) Insert(values qb.H) *Builder {
	if !b.active("insert") {
		return b
	}
	b.stmt.kind = kindInsert
	b.stmt.setCols, b.stmt.setArgs = sortedPairs(values)
	return b
}

func (s *stmt) insertSQL() (string, []any, error) {
	if len(s.setCols) < 1 {
		return "", nil, errors.New("insert with no values")
	}

	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(s.setCols, ","))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.TrimSuffix(strings.Repeat("?,", len(s.setCols)), ","))
	sb.WriteString(")")

	return sb.String(), s.setArgs, nil
}
