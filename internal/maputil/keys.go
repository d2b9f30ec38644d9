// Package maputil provides small generic helpers over maps.
package maputil

import (
	"cmp"
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
// A nil or empty map yields an empty, non-nil slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	keys = slices.AppendSeq(keys, maps.Keys(m))
	slices.Sort(keys)
	return keys
}
