package forwardlist

// Cursor is a position in a list: an element, the position before the first
// element, or the end position. Both Iterator and ConstIterator are Cursors,
// so InsertAfter and EraseAfter accept either kind as anchor.
type Cursor[T any] interface {
	at() *node[T]
}

// cursor is the core shared by both iterator kinds. It compares by node
// identity. The sentinel flag marks a before-begin position, which is a valid
// anchor but must not be dereferenced.
type cursor[T any] struct {
	n        *node[T]
	sentinel bool
}

func (c cursor[T]) at() *node[T] { return c.n }

func (c cursor[T]) next() cursor[T] {
	if c.n == nil {
		panic("forwardlist: Next on end position")
	}

	return cursor[T]{n: c.n.next}
}

func (c cursor[T]) deref() *node[T] {
	if c.n == nil {
		panic("forwardlist: dereference of end position")
	}

	if c.sentinel {
		panic("forwardlist: dereference of before-begin position")
	}

	return c.n
}

// Iterator is a forward cursor with read-write access to the element it
// references. Iterators are comparable with ==: two iterators are equal when
// they reference the same node, and all end iterators are equal.
type Iterator[T any] struct{ cursor[T] }

// Next returns an iterator to the successor position. Advancing from
// BeforeBegin yields Begin, advancing from the last element yields End.
// It panics at the end position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.cursor.next()} }

// Value returns the referenced element. It panics at the end and before-begin
// positions.
func (it Iterator[T]) Value() T { return it.deref().value }

// Set replaces the referenced element with v. It panics at the end and
// before-begin positions.
func (it Iterator[T]) Set(v T) { it.deref().value = v }

// Ptr returns a pointer to the referenced element. It panics at the end and
// before-begin positions.
func (it Iterator[T]) Ptr() *T { return &it.deref().value }

// Const converts to the read-only kind referencing the same position, so the
// two kinds compare against each other: it.Const() == cit.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.cursor} }

// ConstIterator is a forward cursor with read-only access. It compares the
// same way Iterator does.
type ConstIterator[T any] struct{ cursor[T] }

// Next returns an iterator to the successor position. It panics at the end
// position.
func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it.cursor.next()} }

// Value returns the referenced element. It panics at the end and before-begin
// positions.
func (it ConstIterator[T]) Value() T { return it.deref().value }

// Begin returns an iterator to the first element, equal to End when the list
// is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{cursor[T]{n: l.head.next}} }

// End returns the past-the-last position. The zero Iterator is End.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// BeforeBegin returns the position before the first element. It anchors
// inserting at the front and erasing the first element and cannot be
// dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{n: &l.head, sentinel: true}}
}

// CBegin returns a read-only iterator to the first element.
func (l *List[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{cursor[T]{n: l.head.next}} }

// CEnd returns the read-only past-the-last position.
func (l *List[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{} }

// CBeforeBegin returns the read-only position before the first element.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{n: &l.head, sentinel: true}}
}
