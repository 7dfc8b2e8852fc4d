// Package anagram provides character-multiset checks and anagram grouping.
//
// Two strings are anagrams when they contain the exact same characters,
// possibly in a different order.
package anagram

import (
	"slices"

	"go.llib.dev/hashkit/frequency"
)

// Is reports whether s and t are made of the same character multiset.
func Is(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	var counts = make(map[rune]int, len(s))
	for _, char := range s {
		counts[char]++
	}
	for _, char := range t {
		counts[char]--
		if counts[char] < 0 {
			return false
		}
	}
	for _, count := range counts {
		if count != 0 {
			return false
		}
	}
	return true
}

// Signature returns the canonical signature of a string:
// its characters in sorted order.
// Every permutation of the same character multiset shares the signature.
func Signature(s string) string {
	chars := []rune(s)
	slices.Sort(chars)
	return string(chars)
}

// Group collects anagrams into groups keyed by their Signature.
// Groups and their content follow the first-seen order of the input.
// Empty strings form a valid group of their own.
func Group(strs []string) [][]string {
	return frequency.GroupBy(strs, Signature)
}
