// Package lucky computes lucky and unlucky numbers on top of ring.List.
//
// 🚀 What are lucky numbers?
//
//	Start from 1..n. Remove every 2nd number. The second survivor (3) is the
//	next stride: remove every 3rd of the remaining numbers. The third survivor
//	(7) is the next stride, then the fourth (9), and so on until the stride
//	exceeds the count of survivors.
//
//	  1 2 3 4 5 6 7 8 9 10 11 12 13 ...   step 2
//	  1   3   5   7   9    11    13 ...   step 3
//	  1   3       7   9          13 ...   step 7
//
// Unlucky numbers are the complement: every integer in 1..n that the sieve
// removed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/luckyring/lucky"
//
//	l, err := lucky.Numbers[int](30)          // 1 3 7 9 13 15 21 25
//	u := lucky.Unlucky(l, 30)                 // 2 4 5 6 8 10 ...
//	l, u, err = lucky.Partition[int](30,
//		lucky.WithLogger(logger),
//		lucky.WithOnPass(func(p lucky.Pass) { ... }))
//
// Both functions only use the public ring.List API; the inputs are never
// mutated and every result is an independent list.
//
// Complexity:
//
//	Numbers: O(n²) worst case (each marked value is deleted by a linear scan).
//	Unlucky: O(n·L), L = size of the lucky list.
package lucky
