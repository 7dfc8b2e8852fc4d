// Package datastruct contains the container types backing the algorithm packages.
//
// The datastruct package is considered as a `lite` package,
// and therefore its dependencies strictly restricted.
package datastruct

import "iter"

// Set is an unordered collection of unique values with O(1) membership checks.
type Set[T comparable] struct {
	vs map[T]struct{}
}

func (s *Set[T]) Add(vs ...T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{}, len(vs))
	}
	for _, v := range vs {
		s.vs[v] = struct{}{}
	}
}

func (s Set[T]) Has(v T) bool {
	if s.vs == nil {
		return false
	}
	_, ok := s.vs[v]
	return ok
}

func (s *Set[T]) Delete(v T) {
	if s.vs == nil {
		return
	}
	delete(s.vs, v)
}

func (s Set[T]) Len() int {
	return len(s.vs)
}

func (set Set[T]) FromSlice(vs []T) Set[T] {
	set.Add(vs...)
	return set
}

func (s Set[T]) ToSlice() []T {
	var out = make([]T, 0, len(s.vs))
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}
