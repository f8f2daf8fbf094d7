// Package ring declares List, Cursor, the Integer constraint and the
// sentinel errors returned by list operations.
package ring

import "errors"

// Sentinel errors for ring operations.
var (
	// ErrUnderflow indicates a pop from an empty list.
	ErrUnderflow = errors.New("ring: list is empty")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("ring: index out of range")

	// ErrInvalidRange indicates a negative count or lo > hi in NewRandom.
	ErrInvalidRange = errors.New("ring: invalid random range")
)

// Integer is the set of types NewRandom can draw uniformly.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// handle addresses a node inside a List's arena.
// Handles are 1-based so that the zero value means "no node".
type handle int

const none handle = 0

// node is one arena slot: a value and the handle of its successor.
type node[T any] struct {
	value T
	next  handle
}

// List is a circular singly-linked list of T.
//
// Invariants:
//   - size == 0 ⇔ head == none && tail == none.
//   - size > 0  ⇒ following size successor links from head returns to head,
//     and the successor of tail is head.
//
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	nodes []node[T] // arena; nodes[h-1] is the slot for handle h
	free  []handle  // reclaimed slots, reused LIFO
	head  handle
	tail  handle
	size  int
}

// Cursor is a read position on a List used for bounded ring walks.
//
// A Cursor is invalidated by any mutation of its List. Callers stop walking
// after Len() steps; Next never returns an invalid cursor on a non-empty ring.
type Cursor[T comparable] struct {
	l *List[T]
	h handle
}
