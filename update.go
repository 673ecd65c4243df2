package sqlq

import (
	"errors"
	"strings"

	"github.com/maxshaw/sqlq/qb"
)

// Update turns the chain into an UPDATE setting the given column/value
// pairs. Columns compile in lexical order; values stay aligned with them.
func (b *Builder) Update(values qb.H) *Builder {
	if !b.active("update") {
		return b
	}
	b.stmt.kind = kindUpdate
	b.stmt.setCols, b.stmt.setArgs = sortedPairs(values)
	return b
}

func (s *stmt) updateSQL() (string, []any, error) {
	if len(s.setCols) < 1 {
		return "", nil, errors.New("update with no values")
	}

	cond, whereArgs, err := qb.Build("AND", s.exprs...)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder

	sb.WriteString("UPDATE ")
	sb.WriteString(s.table)
	sb.WriteString(" SET ")

	for i, col := range s.setCols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col)
		sb.WriteString(" = ?")
	}

	if cond != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(cond)
	}

	// SET values bind before WHERE values.
	return sb.String(), append(s.setArgs, whereArgs...), nil
}
