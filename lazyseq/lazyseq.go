// Package lazyseq provides lazily evaluated sequence transformations over
// iter.Seq. Nothing is computed until a sequence is consumed, so pipelines
// like Take(Map(s, f), 3) apply f only three times.
package lazyseq

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// From returns a sequence over the given items.
func From[T any](items ...T) iter.Seq[T] {
	return FromSlice(items)
}

// FromSlice returns a sequence over the elements of s.
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Map returns a sequence of fn applied to each element of s.
func Map[T, U any](s iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter returns the elements of s for which keep reports true.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !keep(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Take returns at most the first n elements of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		count := 0
		for v := range s {
			if count >= n {
				return
			}
			if !yield(v) {
				return
			}
			count++
		}
	}
}

// Zip pairs elements of a and b positionally, stopping with the shorter
// sequence.
func Zip[T, U any](a iter.Seq[T], b iter.Seq[U]) iter.Seq2[T, U] {
	return func(yield func(T, U) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := next()
			if !ok {
				return
			}
			if !yield(va, vb) {
				return
			}
		}
	}
}

// Reduce folds s left to right into an accumulator, starting from init.
func Reduce[T, A any](s iter.Seq[T], fn func(A, T) A, init A) A {
	acc := init
	for v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Run is a maximal run of equal adjacent elements.
type Run[T comparable] struct {
	Value T
	Count int
}

// GroupSame collapses each maximal run of equal adjacent elements of s
// into a single Run, lazily: a run is emitted as soon as the element after
// it is seen.
func GroupSame[T comparable](s iter.Seq[T]) iter.Seq[Run[T]] {
	return func(yield func(Run[T]) bool) {
		var cur Run[T]
		for v := range s {
			if cur.Count > 0 && v == cur.Value {
				cur.Count++
				continue
			}
			if cur.Count > 0 && !yield(cur) {
				return
			}
			cur = Run[T]{Value: v, Count: 1}
		}
		if cur.Count > 0 {
			yield(cur)
		}
	}
}

// GroupBy consumes s and buckets its elements by key, preserving encounter
// order within each bucket.
func GroupBy[T any, K comparable](s iter.Seq[T], key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for v := range s {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// Sorted consumes s and returns a sequence over its elements in ascending
// order.
func Sorted[T constraints.Ordered](s iter.Seq[T]) iter.Seq[T] {
	collected := slices.Collect(s)
	slices.Sort(collected)
	return FromSlice(collected)
}

// SortedFunc is Sorted with a caller-supplied comparison.
func SortedFunc[T any](s iter.Seq[T], cmp func(a, b T) int) iter.Seq[T] {
	collected := slices.Collect(s)
	slices.SortFunc(collected, cmp)
	return FromSlice(collected)
}

// Collect consumes s into a slice.
func Collect[T any](s iter.Seq[T]) []T {
	return slices.Collect(s)
}
