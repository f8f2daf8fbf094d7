package ring

// Front returns a cursor on head. On an empty list the cursor is not Valid.
func (l *List[T]) Front() Cursor[T] { return Cursor[T]{l: l, h: l.head} }

// Back returns a cursor on tail. On an empty list the cursor is not Valid.
func (l *List[T]) Back() Cursor[T] { return Cursor[T]{l: l, h: l.tail} }

// Valid reports whether the cursor points at a node.
func (c Cursor[T]) Valid() bool { return c.l != nil && c.h != none }

// Value returns the element under the cursor, or the zero value if the
// cursor is not Valid.
func (c Cursor[T]) Value() T {
	if !c.Valid() {
		var zero T
		return zero
	}

	return c.l.node(c.h).value
}

// Next returns a cursor on the successor. The successor of tail is head.
func (c Cursor[T]) Next() Cursor[T] {
	if !c.Valid() {
		return c
	}

	return Cursor[T]{l: c.l, h: c.l.node(c.h).next}
}

// Same reports whether both cursors point at the same node of the same list.
// Ring walks use it to detect the return to their starting node.
func (c Cursor[T]) Same(o Cursor[T]) bool { return c.l == o.l && c.h == o.h }
