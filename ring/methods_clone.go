// File: methods_clone.go
// Role: value semantics (Clone, Assign, Equal) and whole-list merges.
// Ownership:
//   - Every operation here copies values into the receiver's own arena;
//     no node is ever shared between two lists.

package ring

// Clone returns a deep copy of l with a compact arena in ring order.
//
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{nodes: make([]node[T], 0, l.size)}
	out.appendFrom(l, l.size)

	return out
}

// Assign replaces the contents of l with a deep copy of src.
// Assigning a list to itself is a no-op; a nil src empties l.
//
// Complexity: O(len(l) + len(src)).
func (l *List[T]) Assign(src *List[T]) {
	if src == l {
		return
	}
	l.reset()
	if src == nil {
		return
	}
	l.appendFrom(src, src.size)
}

// PushTailList appends a copy of every element of other, in other's order.
// other is not modified; passing l itself doubles the list.
//
// Complexity: O(len(other)).
func (l *List[T]) PushTailList(other *List[T]) {
	if other == nil || other.size == 0 {
		return
	}
	l.appendFrom(other, other.size)
}

// PushHeadList prepends a copy of every element of other, so that l becomes
// [other..., old l...]. The result is built in a fresh arena and swapped in,
// so l is either fully updated or untouched. other is not modified.
//
// Complexity: O(len(other) + len(l)).
func (l *List[T]) PushHeadList(other *List[T]) {
	if other == nil || other.size == 0 {
		return
	}
	merged := &List[T]{nodes: make([]node[T], 0, other.size+l.size)}
	merged.appendFrom(other, other.size)
	merged.appendFrom(l, l.size)
	*l = *merged
}

// Equal reports whether both lists hold equal elements in the same order.
// A nil other equals an empty list.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil {
		return l.size == 0
	}
	if l.size != other.size {
		return false
	}
	a, b := l.Front(), other.Front()
	for i := 0; i < l.size; i++ {
		if a.Value() != b.Value() {
			return false
		}
		a, b = a.Next(), b.Next()
	}

	return true
}

// appendFrom pushes the first count elements of src onto l's tail.
// count is captured by the caller before any mutation, so src == l is safe.
func (l *List[T]) appendFrom(src *List[T], count int) {
	c := src.Front()
	for i := 0; i < count; i++ {
		l.PushTail(c.Value())
		c = c.Next()
	}
}
