// File: list.go
// Role: construction, end insertion/removal, delete-by-value and indexed access.
// Complexity:
//   - PushTail, PopHead, Len: O(1).
//   - PopTail, Delete, At, Set: O(n).

package ring

import (
	"fmt"
	"strings"
)

// New returns an empty List.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a List holding values in order; values[0] becomes head.
func FromSlice[T comparable](values ...T) *List[T] {
	l := &List[T]{nodes: make([]node[T], 0, len(values))}
	for _, v := range values {
		l.PushTail(v)
	}

	return l
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int { return l.size }

// node returns the arena slot for h. h must be a live handle.
func (l *List[T]) node(h handle) *node[T] {
	return &l.nodes[h-1]
}

// alloc stores v in a free slot (or a new one) and returns its handle.
// The successor link is left for the caller to set.
func (l *List[T]) alloc(v T) handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[h-1] = node[T]{value: v}

		return h
	}
	l.nodes = append(l.nodes, node[T]{value: v})

	return handle(len(l.nodes))
}

// release returns h to the free-list. When the list becomes empty the
// whole arena is reset instead, so slots never accumulate.
func (l *List[T]) release(h handle) {
	if l.size == 0 {
		l.reset()
		return
	}
	l.nodes[h-1] = node[T]{}
	l.free = append(l.free, h)
}

// reset drops every node while keeping arena capacity.
func (l *List[T]) reset() {
	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head, l.tail = none, none
	l.size = 0
}

// Clear removes every element. O(n) for zeroing, capacity is kept.
func (l *List[T]) Clear() { l.reset() }

// PushTail appends v as the new tail; its successor is head. O(1).
func (l *List[T]) PushTail(v T) {
	h := l.alloc(v)
	if l.size == 0 {
		l.head, l.tail = h, h
		l.node(h).next = h
	} else {
		l.node(h).next = l.head
		l.node(l.tail).next = h
		l.tail = h
	}
	l.size++
}

// PopHead removes and returns the front element.
// Returns ErrUnderflow if the list is empty. O(1).
func (l *List[T]) PopHead() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrUnderflow
	}
	h := l.head
	v := l.node(h).value
	if l.size == 1 {
		l.head, l.tail = none, none
	} else {
		l.head = l.node(h).next
		l.node(l.tail).next = l.head
	}
	l.size--
	l.release(h)

	return v, nil
}

// PopTail removes and returns the back element.
// There is no back-reference, so the predecessor of tail is found by walking
// from head. Returns ErrUnderflow if the list is empty. O(n).
func (l *List[T]) PopTail() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrUnderflow
	}
	h := l.tail
	v := l.node(h).value
	if l.size == 1 {
		l.head, l.tail = none, none
	} else {
		prev := l.head
		for i := 0; i < l.size-2; i++ {
			prev = l.node(prev).next
		}
		l.node(prev).next = l.head
		l.tail = prev
	}
	l.size--
	l.release(h)

	return v, nil
}

// Delete removes every element equal to v, keeping the relative order of the
// survivors, and returns how many were removed. Absent values are a no-op.
//
// Steps:
//  1. Trim matching elements off the head (possibly all of them).
//  2. Walk predecessor-first from head to tail, unlinking matching successors;
//     when the tail itself is unlinked its predecessor becomes tail and the
//     ring closes onto head through the relinked successor.
//
// Complexity: O(n).
func (l *List[T]) Delete(v T) int {
	removed := 0
	for l.size > 0 && l.node(l.head).value == v {
		_, _ = l.PopHead()
		removed++
	}
	if l.size == 0 {
		return removed
	}

	cur := l.head
	for cur != l.tail {
		next := l.node(cur).next
		if l.node(next).value != v {
			cur = next
			continue
		}
		l.node(cur).next = l.node(next).next
		if next == l.tail {
			l.tail = cur
		}
		l.size--
		l.release(next)
		removed++
	}

	return removed
}

// seek returns the handle at 0-based position i. i must be in range.
func (l *List[T]) seek(i int) handle {
	h := l.head
	for ; i > 0; i-- {
		h = l.node(h).next
	}

	return h
}

// At returns the element at 0-based index i (0 is head).
// Returns ErrOutOfRange if i < 0 or i >= Len(). O(i).
func (l *List[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, ErrOutOfRange
	}

	return l.node(l.seek(i)).value, nil
}

// Set replaces the element at 0-based index i.
// Returns ErrOutOfRange if i < 0 or i >= Len(); the list is then unchanged. O(i).
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= l.size {
		return ErrOutOfRange
	}
	l.node(l.seek(i)).value = v

	return nil
}

// Contains reports whether some element equals v. O(n).
func (l *List[T]) Contains(v T) bool {
	for c, i := l.Front(), 0; i < l.size; c, i = c.Next(), i+1 {
		if c.Value() == v {
			return true
		}
	}

	return false
}

// Values returns a snapshot of the elements in ring order starting at head.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for c, i := l.Front(), 0; i < l.size; c, i = c.Next(), i+1 {
		out = append(out, c.Value())
	}

	return out
}

// String renders the elements from head once around the ring, separated by
// single spaces. An empty list renders as "".
func (l *List[T]) String() string {
	var b strings.Builder
	for c, i := l.Front(), 0; i < l.size; c, i = c.Next(), i+1 {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, c.Value())
	}

	return b.String()
}
