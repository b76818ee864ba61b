package slist

import (
	"iter"

	"github.com/bradenaw/juniper/iterator"
)

// Iterator is a position in a List: an element, the position before the first
// element (BeforeBegin), or the position past the last element (End). It is a
// plain value borrowing the list's node; copying it and advancing the copies
// independently is well-defined.
//
// Iterators compare with ==. Two iterators are equal iff they reference the
// same element, or both are End, or both are the BeforeBegin of the same
// list.
//
// An iterator stays valid across any mutation of the list except removal of
// the element it references.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an iterator to the first element, equal to End if the list is
// empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{n: l.head.next} }

// End returns the iterator one past the last element. It must not be
// dereferenced or advanced.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// BeforeBegin returns the iterator to the position before the first element.
// It must not be dereferenced; it exists to be the pos argument of
// InsertAfter and EraseAfter when operating at the front.
func (l *List[T]) BeforeBegin() Iterator[T] { return Iterator[T]{n: &l.head} }

// Ok reports whether the iterator references a node at all, i.e. is not End.
// Note that BeforeBegin is Ok but still must not be dereferenced.
func (it Iterator[T]) Ok() bool { return it.n != nil }

// Next returns the iterator to the following position. Advancing End panics.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panic("slist: Next past the end of the list")
	}
	return Iterator[T]{n: it.n.next}
}

// Value returns the element the iterator references. It must not be called on
// End or BeforeBegin.
func (it Iterator[T]) Value() T { return it.n.value }

// Set overwrites the element the iterator references. It must not be called
// on End or BeforeBegin.
func (it Iterator[T]) Set(value T) { it.n.value = value }

type valueIterator[T any] struct {
	n *node[T]
}

var _ iterator.Iterator[int] = &valueIterator[int]{}

func (it *valueIterator[T]) Next() (T, bool) {
	if it.n == nil {
		var zero T
		return zero, false
	}
	v := it.n.value
	it.n = it.n.next
	return v, true
}

// Values returns an iterator over the elements of the list in order.
func (l *List[T]) Values() iterator.Iterator[T] {
	return &valueIterator[T]{n: l.head.next}
}

// All returns the elements of the list in order, for use with range.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice returns the elements of the list in order as a slice.
func (l *List[T]) ToSlice() []T {
	return iterator.Collect(l.Values())
}
