package slist

import (
	"github.com/bradenaw/juniper/iterator"
	"golang.org/x/exp/constraints"
)

// Equal reports whether lhs and rhs have the same length and equal elements
// at every position. Runs in O(1) when the lengths differ.
func Equal[T comparable](lhs *List[T], rhs *List[T]) bool {
	if lhs.Len() != rhs.Len() {
		return false
	}
	return iterator.Equal(lhs.Values(), rhs.Values())
}

// EqualFunc is Equal using eq to compare elements.
func EqualFunc[T any](lhs *List[T], rhs *List[T], eq func(T, T) bool) bool {
	if lhs.Len() != rhs.Len() {
		return false
	}
	b := rhs.head.next
	for a := lhs.head.next; a != nil; a = a.next {
		if !eq(a.value, b.value) {
			return false
		}
		b = b.next
	}
	return true
}

// Compare lexicographically compares the elements of lhs and rhs. It returns
// -1 at the first position where lhs's element is less than rhs's (or if lhs
// is a proper prefix of rhs), 1 for the symmetric cases, and 0 if the lists
// are elementwise equal.
func Compare[T constraints.Ordered](lhs *List[T], rhs *List[T]) int {
	a, b := lhs.head.next, rhs.head.next
	for a != nil && b != nil {
		switch {
		case a.value < b.value:
			return -1
		case b.value < a.value:
			return 1
		}
		a, b = a.next, b.next
	}
	switch {
	case a != nil:
		return 1
	case b != nil:
		return -1
	}
	return 0
}

// CompareFunc is Compare using cmp to compare elements. cmp must return a
// negative number when its first argument is less, a positive number when it
// is greater, and zero when the two are equivalent.
func CompareFunc[T any](lhs *List[T], rhs *List[T], cmp func(T, T) int) int {
	a, b := lhs.head.next, rhs.head.next
	for a != nil && b != nil {
		if c := cmp(a.value, b.value); c != 0 {
			return c
		}
		a, b = a.next, b.next
	}
	switch {
	case a != nil:
		return 1
	case b != nil:
		return -1
	}
	return 0
}

// Less reports whether lhs is lexicographically before rhs.
func Less[T constraints.Ordered](lhs *List[T], rhs *List[T]) bool {
	return Compare(lhs, rhs) < 0
}

// LessEqual reports whether lhs is lexicographically before rhs or equal to
// it.
func LessEqual[T constraints.Ordered](lhs *List[T], rhs *List[T]) bool {
	return Compare(lhs, rhs) <= 0
}

// Greater reports whether lhs is lexicographically after rhs.
func Greater[T constraints.Ordered](lhs *List[T], rhs *List[T]) bool {
	return Compare(lhs, rhs) > 0
}

// GreaterEqual reports whether lhs is lexicographically after rhs or equal to
// it.
func GreaterEqual[T constraints.Ordered](lhs *List[T], rhs *List[T]) bool {
	return Compare(lhs, rhs) >= 0
}
