// Package ring - deterministic random construction.
//
// Goals:
//   - Determinism: the same seed yields the same list on every run.
//   - Encapsulation: one RNG factory; no time-based sources anywhere.
//
// Engine:
//   - math/rand with rand.NewSource(seed); values are drawn by rejection
//     sampling over Uint64, so every integer in [lo, hi] is equally likely.
package ring

import "math/rand"

// DefaultSeed is the fixed seed used by NewRandom unless WithSeed overrides it.
const DefaultSeed int64 = 42

// RandomOption configures NewRandom.
type RandomOption func(*randomOptions)

type randomOptions struct {
	seed int64
}

// WithSeed overrides DefaultSeed. seed == 0 keeps DefaultSeed.
func WithSeed(seed int64) RandomOption {
	return func(o *randomOptions) {
		if seed != 0 {
			o.seed = seed
		}
	}
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// NewRandom returns a List of n values drawn independently and uniformly from
// [lo, hi]. The first value drawn becomes head.
//
// Errors:
//   - ErrInvalidRange if n < 0 or lo > hi.
//
// Complexity: O(n) expected.
func NewRandom[T Integer](n int, lo, hi T, opts ...RandomOption) (*List[T], error) {
	if n < 0 || lo > hi {
		return nil, ErrInvalidRange
	}
	o := randomOptions{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}

	r := rngFromSeed(o.seed)
	// Width of [lo, hi] minus one, computed modulo 2^64 so it is exact for
	// both signed and unsigned T.
	span := uint64(hi) - uint64(lo)
	l := &List[T]{nodes: make([]node[T], 0, n)}
	for i := 0; i < n; i++ {
		var off uint64
		if span == ^uint64(0) {
			off = r.Uint64()
		} else {
			off = uint64n(r, span+1)
		}
		l.PushTail(T(uint64(lo) + off))
	}

	return l, nil
}

// uint64n returns a uniform value in [0, n) for n > 0.
// Draws below -n%n (= 2^64 mod n) are rejected to remove modulo bias.
func uint64n(r *rand.Rand, n uint64) uint64 {
	if n&(n-1) == 0 {
		return r.Uint64() & (n - 1)
	}
	thresh := -n % n
	for {
		v := r.Uint64()
		if v >= thresh {
			return v % n
		}
	}
}
