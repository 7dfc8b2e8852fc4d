// Package dedup provides duplication checks over in-memory sequences.
package dedup

import "go.llib.dev/hashkit/datastruct"

// HasDuplicate reports whether any value occurs more than once in the sequence.
func HasDuplicate[T comparable](vs []T) bool {
	_, ok := FirstDuplicate(vs)
	return ok
}

// FirstDuplicate returns the first value whose second occurrence is encountered
// while scanning the sequence in order.
func FirstDuplicate[T comparable](vs []T) (T, bool) {
	var seen datastruct.Set[T]
	for _, v := range vs {
		if seen.Has(v) {
			return v, true
		}
		seen.Add(v)
	}
	var zero T
	return zero, false
}

// Unique returns the sequence's distinct values in first-seen order.
func Unique[T comparable](vs []T) []T {
	if vs == nil {
		return nil
	}
	return datastruct.OrderedSet[T]{}.FromSlice(vs).ToSlice()
}
