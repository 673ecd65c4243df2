package sqlq

import (
	"sort"

	"github.com/samber/lo"
)

// sortedKeys returns h's keys in lexical order so compiled SQL is stable
// across runs (map iteration order is not).
func sortedKeys[V any](h map[string]V) []string {
	keys := lo.Keys(h)
	sort.Strings(keys)
	return keys
}

// sortedPairs splits h into aligned column and value slices, columns in
// lexical order.
func sortedPairs[V any](h map[string]V) ([]string, []any) {
	cols := sortedKeys(h)
	args := lo.Map(cols, func(col string, _ int) any {
		return h[col]
	})
	return cols, args
}
