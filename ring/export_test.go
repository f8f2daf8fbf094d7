package ring

import "fmt"

// CheckRing exposes ring invariants to external tests.
//
// Verifies:
//   - size == 0 ⇔ head == tail == none;
//   - size successor steps from head land back on head, touching tail at step size-1;
//   - successor of tail is head;
//   - live + free slots account for the whole arena.
func CheckRing[T comparable](l *List[T]) error {
	if l.size == 0 {
		if l.head != none || l.tail != none {
			return fmt.Errorf("empty list with head=%d tail=%d", l.head, l.tail)
		}
		return nil
	}
	if l.head == none || l.tail == none {
		return fmt.Errorf("size %d with head=%d tail=%d", l.size, l.head, l.tail)
	}
	h := l.head
	for i := 0; i < l.size; i++ {
		if i == l.size-1 && h != l.tail {
			return fmt.Errorf("step %d reached %d, want tail %d", i, h, l.tail)
		}
		h = l.node(h).next
	}
	if h != l.head {
		return fmt.Errorf("ring not closed: %d steps from head reached %d", l.size, h)
	}
	if l.node(l.tail).next != l.head {
		return fmt.Errorf("tail successor %d is not head %d", l.node(l.tail).next, l.head)
	}
	if l.size+len(l.free) != len(l.nodes) {
		return fmt.Errorf("arena leak: size %d + free %d != slots %d", l.size, len(l.free), len(l.nodes))
	}

	return nil
}

// ArenaLen reports the number of arena slots, live or free.
func ArenaLen[T comparable](l *List[T]) int { return len(l.nodes) }
