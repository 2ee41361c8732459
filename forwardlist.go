// Package forwardlist implements a generic singly linked sequence with O(1)
// insertion and removal after a cursor position.
//
// The list keeps a sentinel head node embedded in the List value, so inserting
// and erasing at the front are the same operations as anywhere else, anchored
// at BeforeBegin. Len is O(1) via a maintained count. A List is not safe for
// concurrent use.
package forwardlist

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked sequence of values of type T.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head node[T] // sentinel, holds no value; head.next is the first element
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding the given values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	tail := l.BeforeBegin()

	for _, v := range values {
		tail = l.InsertAfter(tail, v)
	}

	return l
}

// Collect returns a list holding the values produced by seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	tail := l.BeforeBegin()

	for v := range seq {
		tail = l.InsertAfter(tail, v)
	}

	return l
}

// Len reports the number of elements without traversing the list.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.head.next == nil }

// PushFront inserts v before the first element.
func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

// PopFront removes the first element and returns its value.
// It panics if the list is empty.
func (l *List[T]) PopFront() T {
	first := l.head.next
	if first == nil {
		panic("forwardlist: PopFront on empty list")
	}

	v := first.value
	l.EraseAfter(l.BeforeBegin())

	return v
}

// InsertAfter inserts v after pos and returns an iterator to the new element.
// pos may reference any element or BeforeBegin; inserting after BeforeBegin is
// PushFront. It panics if pos is the end position.
func (l *List[T]) InsertAfter(pos Cursor[T], v T) Iterator[T] {
	at := pos.at()
	if at == nil {
		panic("forwardlist: InsertAfter on end position")
	}

	at.next = &node[T]{value: v, next: at.next}
	l.size++

	return Iterator[T]{cursor[T]{n: at.next}}
}

// EraseAfter removes the element after pos and returns an iterator to the
// element following the removed one, or End if none. It panics if pos has no
// successor.
func (l *List[T]) EraseAfter(pos Cursor[T]) Iterator[T] {
	at := pos.at()
	if at == nil || at.next == nil {
		panic("forwardlist: EraseAfter with no element after position")
	}

	removed := at.next
	at.next = removed.next
	removed.next = nil // keep stale iterators from reaching the list
	l.size--

	return Iterator[T]{cursor[T]{n: at.next}}
}

// Clear removes all elements, leaving an empty list ready for reuse.
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

// Swap exchanges the contents of l and other in O(1). Element iterators keep
// referencing their nodes, which become reachable from the other list;
// BeforeBegin cursors stay bound to their own list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Clone returns a deep copy of the list preserving element order.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	tail := out.BeforeBegin()

	for n := l.head.next; n != nil; n = n.next {
		tail = out.InsertAfter(tail, n.value)
	}

	return out
}

// Assign replaces the contents of l with a copy of src. The copy is built
// aside and swapped in, so l stays untouched until the copy is complete.
// Assigning a list to itself leaves it unchanged.
func (l *List[T]) Assign(src *List[T]) {
	l.Swap(src.Clone())
}

// All returns an iterator over the element values in list order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice returns the element values as a new slice in list order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
