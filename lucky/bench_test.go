package lucky_test

import (
	"testing"

	"github.com/katalvlaran/luckyring/lucky"
)

// benchmarkNumbers runs the sieve for n and fails on unexpected errors.
func benchmarkNumbers(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lucky.Numbers[int](n); err != nil {
			b.Fatalf("Numbers failed: %v", err)
		}
	}
}

// BenchmarkNumbers_1000 benchmarks the sieve on 1..1000.
func BenchmarkNumbers_1000(b *testing.B) { benchmarkNumbers(b, 1000) }

// BenchmarkNumbers_5000 benchmarks the sieve on 1..5000.
func BenchmarkNumbers_5000(b *testing.B) { benchmarkNumbers(b, 5000) }

// BenchmarkUnlucky_1000 benchmarks the complement scan on 1..1000.
func BenchmarkUnlucky_1000(b *testing.B) {
	l, err := lucky.Numbers[int](1000)
	if err != nil {
		b.Fatalf("Numbers failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lucky.Unlucky(l, 1000)
	}
}
