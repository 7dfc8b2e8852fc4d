// Package pairsum finds index pairs that add up to a target value.
package pairsum

import "go.llib.dev/hashkit/internal/constraints"

// Indices returns the positions i < j for which vs[i]+vs[j] == target.
//
// The lookup is a single pass with a complement map:
// for each value, the index of the complement that would complete the sum
// is either already known or the value is remembered for later.
// When no such pair exists, ok is false.
func Indices[T constraints.Number](vs []T, target T) (i, j int, ok bool) {
	var seen = make(map[T]int, len(vs))
	for index, v := range vs {
		if at, found := seen[target-v]; found {
			return at, index, true
		}
		if _, found := seen[v]; !found {
			seen[v] = index
		}
	}
	return 0, 0, false
}
