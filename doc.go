// Package luckyring is a small in-memory playground for circular lists and
// the lucky-number sieve.
//
// 🚀 What is inside?
//
//	• ring/  — generic singly-linked circular list with value semantics:
//	           head/tail insertion, head/tail removal, delete-by-value,
//	           bounds-checked indexed access, deep Clone/Assign, list merges
//	           and a reproducible randomized constructor (seed 42).
//	• lucky/ — the sieve of lucky numbers and its complement (unlucky
//	           numbers), built only on the public ring API.
//	• cmd/luckyring — CLI that replays the container walkthrough and prints
//	           lucky/unlucky/random sequences.
//
// Quick ASCII example:
//
//	head ─► 1 ─► 3 ─► 7 ─► 9 ─┐
//	        ▲                 │
//	        └──────── tail ◄──┘
//
//	represents the lucky numbers up to 10 stored in a ring.
//
//	go get github.com/katalvlaran/luckyring
package luckyring
