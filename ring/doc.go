// Package ring implements a singly-linked circular list with value semantics.
//
// 🚀 What is a ring?
//
//	A ring is a linked sequence whose last element points back to the first.
//	There is no nil terminator: traversal stops after Len() steps or when it
//	returns to the starting node.
//
//	    head ──► 1 ──► 2 ──► 3 ──┐
//	             ▲               │
//	             └───── tail ◄───┘
//
// ✨ Key features:
//   - O(1) PushTail, PopHead and Len
//   - O(n) PopTail (no back-reference), At/Set and Delete
//   - PushTailList / PushHeadList merges that deep-copy the other list
//   - Clone / Assign with full value semantics (no shared nodes)
//   - NewRandom: reproducible uniform fill from a fixed seed (42 by default)
//
// Storage:
//
//	Each List owns an arena of nodes addressed by small integer handles.
//	Successor links are handles into the same arena, and slots released by
//	pops and deletes are recycled through a free-list. Two lists never share
//	an arena, so mutating a clone can never affect its source.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/luckyring/ring"
//
//	l := ring.FromSlice(1, 2, 3, 2, 1)
//	l.Delete(2)            // l = 1 3 1
//	v, err := l.At(1)      // v = 3
//	_, err = ring.New[int]().PopHead() // err = ring.ErrUnderflow
//
// Concurrency:
//
//	A List is not safe for concurrent use. Guard whole-list operations with
//	an external lock or keep the list owned by a single goroutine.
package ring
