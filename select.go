package sqlq

import (
	"strings"

	"github.com/maxshaw/sqlq/qb"
)

// Select sets the projection. No arguments selects every column; a prior
// projection is overwritten either way.
func (b *Builder) Select(cols ...string) *Builder {
	if !b.active("select") {
		return b
	}
	b.stmt.kind = kindSelect
	b.stmt.cols = cols
	return b
}

// SelectAs sets an aliased projection from alias to source column,
// rendered as "source AS alias" sorted by alias.
func (b *Builder) SelectAs(aliases map[string]string) *Builder {
	if !b.active("select") {
		return b
	}
	b.stmt.kind = kindSelect

	cols := make([]string, 0, len(aliases))
	for _, alias := range sortedKeys(aliases) {
		cols = append(cols, aliases[alias]+" AS "+alias)
	}
	b.stmt.cols = cols
	return b
}

// OrderBy sets the ordering; direction defaults to ascending.
func (b *Builder) OrderBy(col string, sortBy ...qb.SortBy) *Builder {
	if !b.active("order") {
		return b
	}
	if col == "" {
		b.stmt.order = ""
		return b
	}

	dir := qb.Ascend
	if len(sortBy) > 0 {
		dir = sortBy[0]
	}
	b.stmt.order = col + " " + dir.String()
	return b
}

func (s *stmt) selectSQL() (string, []any, error) {
	cond, args, err := qb.Build("AND", s.exprs...)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder

	sb.WriteString("SELECT ")
	if len(s.cols) < 1 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(s.cols, ", "))
	}

	sb.WriteString(" FROM ")
	sb.WriteString(s.table)

	if cond != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(cond)
	}

	if s.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(s.order)
	}

	return sb.String(), args, nil
}
