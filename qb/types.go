package qb

// H holds column/value pairs for inserts, updates and map-style filters,
// and is the shape result helpers return rows in.
type H map[string]any

type SortBy int

const (
	Ascend SortBy = iota
	Descend
)

func (s SortBy) String() string {
	if s == Descend {
		return "DESC"
	}
	return "ASC"
}
