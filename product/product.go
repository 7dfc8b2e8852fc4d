// Package product builds running-product transformations of numeric sequences.
package product

import "go.llib.dev/hashkit/internal/constraints"

// ExceptSelf returns a sequence where each position holds
// the product of every other position's value, without using division.
//
// A left-to-right pass fills each slot with the product of all
// strictly preceding values, then a right-to-left pass multiplies each
// slot with the product of all strictly following values.
// O(n) time, and no extra space beyond the output.
func ExceptSelf[T constraints.Number](vs []T) []T {
	if vs == nil {
		return nil
	}
	var out = make([]T, len(vs))

	var left T = 1
	for i := 0; i < len(vs); i++ {
		out[i] = left
		left *= vs[i]
	}

	var right T = 1
	for i := len(vs) - 1; 0 <= i; i-- {
		out[i] *= right
		right *= vs[i]
	}

	return out
}
