// Package slist provides a generic singly-linked list with O(1) insertion and
// removal at the front and immediately after any position.
//
// The list keeps a sentinel head node so that inserting and erasing at the
// front go through the same InsertAfter/EraseAfter path as everywhere else:
// BeforeBegin returns the position of the sentinel, and the element after it
// is the first element of the list. Iterators are plain comparable values
// that borrow a node without owning it; see Iterator.
//
// The zero value of List is an empty list ready to use.
package slist

import (
	"github.com/bradenaw/juniper/xslices"
)

type node[T any] struct {
	next  *node[T]
	value T
}

// List is a singly-linked list. Each element lives in its own node, linked
// only forward, so traversal is forward-only and Len is tracked separately to
// stay O(1).
//
// List is not safe for concurrent use.
type List[T any] struct {
	// head is the sentinel. It holds no value; head.next is the first element.
	head node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list containing values in the given order. It builds the list
// by pushing the values front-first in reverse, so the input order is
// reconstructed exactly.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	vs := xslices.Clone(values)
	xslices.Reverse(vs)
	for _, v := range vs {
		l.PushFront(v)
	}
	return l
}

// Len returns the number of elements in the list in O(1).
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first element of the list, or false if the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

// PushFront inserts value as the new first element in O(1).
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{next: l.head.next, value: value}
	l.size++
}

// PopFront removes and returns the first element in O(1). On an empty list it
// does nothing and returns false.
func (l *List[T]) PopFront() (T, bool) {
	first := l.head.next
	if first == nil {
		var zero T
		return zero, false
	}
	l.head.next = first.next
	first.next = nil
	l.size--
	return first.value, true
}

// InsertAfter inserts value immediately after pos in O(1) and returns an
// iterator to the new element. pos must be BeforeBegin or an iterator to an
// element of this list; inserting after End panics. No existing iterator is
// invalidated.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	if pos.n == nil {
		panic("slist: InsertAfter on the end iterator")
	}
	n := &node[T]{next: pos.n.next, value: value}
	pos.n.next = n
	l.size++
	return Iterator[T]{n: n}
}

// EraseAfter removes the element immediately after pos in O(1) and returns an
// iterator to the element now after pos, or End if none. pos must be
// BeforeBegin or an iterator to an element of this list, and there must be an
// element after it; otherwise EraseAfter panics. Only iterators to the
// removed element are invalidated.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.n == nil || pos.n.next == nil {
		panic("slist: EraseAfter with no element after pos")
	}
	dead := pos.n.next
	pos.n.next = dead.next
	dead.next = nil
	l.size--
	return Iterator[T]{n: pos.n.next}
}

// Clear removes every element. The chain is severed node by node from the
// front so the garbage collector can reclaim nodes even while outside
// references to some of them remain. Safe on an empty list.
func (l *List[T]) Clear() {
	n := l.head.next
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// Swap exchanges the contents of l and other in O(1) without allocating.
// Iterators keep referencing the elements they referenced before, which are
// now reachable from the other list; the BeforeBegin position of each list
// stays with that list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Clone returns a deep copy of the list: same values in the same order, in
// freshly allocated nodes shared with nothing. The copy is built completely
// off to the side before being returned, so a partially built chain is never
// observable.
func (l *List[T]) Clone() *List[T] {
	tmp := New[T]()
	tail := &tmp.head
	for n := l.head.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
	}
	tmp.size = l.size
	return tmp
}

// CopyFrom replaces the contents of l with a deep copy of other.
// Copying a list into itself is a no-op. The replacement is fully built
// before the old contents are let go.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Swap(other.Clone())
}
