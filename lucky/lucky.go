package lucky

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/luckyring/ring"
)

// Numbers returns the lucky numbers in 1..n, ascending.
//
// Algorithm:
//  1. L = 1..n, step = 2, pass = 1.
//  2. While step ≤ |L|:
//     a. walk L from head; mark every value whose 1-based position is a
//     multiple of step;
//     b. delete every marked value (survivors are distinct, so deleting by
//     value removes exactly the marked positions);
//     c. if |L| ≥ pass+1, the next step is the value at position pass+1
//     (3, then 7, then 9, ...); otherwise stop.
//  3. Return L.
//
// n ≤ 0 yields an empty list; n == 1 yields [1].
//
// Errors:
//   - ErrOptionViolation for a nil context or logger.
//   - ErrTypeOverflow if n does not fit in T.
//   - ctx.Err() if the context is done before a pass starts.
func Numbers[T ring.Integer](n int, opts ...Option) (*ring.List[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if n > 0 && !fits[T](n) {
		return nil, ErrTypeOverflow
	}

	survivors := universe[T](n)
	step := 2
	for pass := 1; step <= survivors.Len(); pass++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}

		marked := ring.New[T]()
		c := survivors.Front()
		for index := 1; index <= survivors.Len(); index++ {
			if index%step == 0 {
				marked.PushTail(c.Value())
			}
			c = c.Next()
		}

		removed := 0
		m := marked.Front()
		for i := 0; i < marked.Len(); i++ {
			removed += survivors.Delete(m.Value())
			m = m.Next()
		}

		p := Pass{Index: pass, Step: step, Removed: removed, Remaining: survivors.Len()}
		o.Logger.Debug("sieve pass",
			zap.Int("pass", p.Index),
			zap.Int("step", p.Step),
			zap.Int("removed", p.Removed),
			zap.Int("remaining", p.Remaining))
		o.OnPass(p)

		next := pass + 1
		if next > survivors.Len() {
			break
		}
		c = survivors.Front()
		for i := 1; i < next; i++ {
			c = c.Next()
		}
		step = int(c.Value())
	}

	return survivors, nil
}

// Unlucky returns every value in 1..n that is not in luckyList, ascending.
// Membership is a linear scan of luckyList; neither input is modified.
// A nil or empty luckyList makes every value in 1..n unlucky.
// The universe stops at the largest value T can hold.
//
// Complexity: O(n·L).
func Unlucky[T ring.Integer](luckyList *ring.List[T], n int) *ring.List[T] {
	out := ring.New[T]()
	all := universe[T](n)
	c := all.Front()
	for i := 0; i < all.Len(); i++ {
		if luckyList == nil || !luckyList.Contains(c.Value()) {
			out.PushTail(c.Value())
		}
		c = c.Next()
	}

	return out
}

// Partition runs Numbers and Unlucky for the same n.
// The two lists are disjoint and together hold exactly 1..n.
func Partition[T ring.Integer](n int, opts ...Option) (luckyList, unluckyList *ring.List[T], err error) {
	luckyList, err = Numbers[T](n, opts...)
	if err != nil {
		return nil, nil, err
	}

	return luckyList, Unlucky(luckyList, n), nil
}

// universe returns the list 1..n (empty for n ≤ 0), cut short at the
// first value T cannot hold.
func universe[T ring.Integer](n int) *ring.List[T] {
	l := ring.New[T]()
	for i := 1; i <= n && fits[T](i); i++ {
		l.PushTail(T(i))
	}

	return l
}

// fits reports whether the positive int i converts to T without wrapping.
func fits[T ring.Integer](i int) bool {
	v := T(i)

	return v > 0 && int(v) == i
}
