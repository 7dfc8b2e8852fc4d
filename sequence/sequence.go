// Package sequence detects runs of consecutive values in integer sequences.
package sequence

import (
	"go.llib.dev/hashkit/datastruct"
	"go.llib.dev/hashkit/internal/constraints"
)

// LongestConsecutive returns the length of the longest run of values
// that follow each other with a step of exactly one.
// The values don't have to be adjacent in the input,
// and duplicates don't extend a run.
//
// Only values without a predecessor are extended forward,
// which bounds the total work to O(n) expected time.
func LongestConsecutive[T constraints.Integer](vs []T) int {
	var (
		members = datastruct.Set[T]{}.FromSlice(vs)
		longest int
	)
	for v := range members.Iter() {
		if members.Has(v - 1) { // not a run start
			continue
		}
		length := 1
		for next := v + 1; members.Has(next); next++ {
			length++
		}
		if longest < length {
			longest = length
		}
	}
	return longest
}
