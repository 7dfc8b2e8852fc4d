// Package frequency provides tallying, grouping and ranking of values by occurrence.
package frequency

import "go.llib.dev/hashkit/datastruct"

// Tally returns how many times each value occurs in the sequence.
func Tally[T comparable](vs []T) map[T]int {
	if vs == nil {
		return nil
	}
	var counts = make(map[T]int, len(vs))
	for _, v := range vs {
		counts[v]++
	}
	return counts
}

// GroupBy groups values that share a canonical key.
// Values within a group and the groups themselves follow the first-seen order.
func GroupBy[K comparable, V any](vs []V, key func(V) K) [][]V {
	if vs == nil {
		return nil
	}
	var (
		keys   datastruct.OrderedSet[K]
		groups = make(map[K][]V, len(vs))
	)
	for _, v := range vs {
		k := key(v)
		keys.Append(k)
		groups[k] = append(groups[k], v)
	}
	var out = make([][]V, 0, keys.Len())
	for k := range keys.Iter() {
		out = append(out, groups[k])
	}
	return out
}

// TopK returns the k most frequent values of the sequence.
//
// Selection is done with a bucket sort indexed by occurrence count,
// so no comparison sort is involved and the work stays O(n).
// Values with equal counts resolve to first-seen order.
// A k equal to the number of distinct values returns all of them.
func TopK[T comparable](vs []T, k int) []T {
	if k <= 0 {
		return nil
	}
	var (
		counts   = Tally(vs)
		distinct = datastruct.OrderedSet[T]{}.FromSlice(vs)
	)
	// a value can occur at most len(vs) times
	var buckets = make([][]T, len(vs)+1)
	for v := range distinct.Iter() {
		count := counts[v]
		buckets[count] = append(buckets[count], v)
	}
	var out = make([]T, 0, k)
	for count := len(buckets) - 1; 0 < count; count-- {
		for _, v := range buckets[count] {
			out = append(out, v)
			if len(out) == k {
				return out
			}
		}
	}
	return out
}
