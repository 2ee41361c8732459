package forwardlist

import "cmp"

// Equal reports whether a and b hold the same values in the same order.
// Lists of different lengths are unequal without any traversal.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if an.value != bn.value {
			return false
		}

		bn = bn.next
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if !eq(an.value, bn.value) {
			return false
		}

		bn = bn.next
	}

	return true
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides, and a strict prefix orders before the longer list. The result is
// -1 when a < b, 0 when the lists are equal and +1 when a > b.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if c := cmp.Compare(an.value, bn.value); c != 0 {
			return c
		}

		an, bn = an.next, bn.next
	}

	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	}

	return 0
}

// CompareFunc is Compare with a caller-supplied element comparison. The
// result is the first non-zero result of cmp; when one list is a strict
// prefix of the other, the shorter orders first.
func CompareFunc[T any](a, b *List[T], cmp func(T, T) int) int {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if c := cmp(an.value, bn.value); c != 0 {
			return c
		}

		an, bn = an.next, bn.next
	}

	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	}

	return 0
}

// Less reports whether a orders lexicographically before b.
func Less[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports whether a does not order after b.
func LessEqual[T cmp.Ordered](a, b *List[T]) bool { return !Less(b, a) }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool { return Less(b, a) }

// GreaterEqual reports whether a does not order before b.
func GreaterEqual[T cmp.Ordered](a, b *List[T]) bool { return !Less(a, b) }
