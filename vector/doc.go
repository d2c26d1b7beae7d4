// SPDX-License-Identifier: MIT

// Package vector provides the owned, immutable Vector type and the
// dot-product kernel that is the unit of work dispatched to pool workers.
//
// 🚀 What is here?
//
//	Numeric  : type-set constraint for element types (integers, floats, complex)
//	Vector   : owned ordered sequence; constructor copies, accessors never leak
//	Dot      : inner product of two equal-length vectors
//
// ⚙️ Usage:
//
//	a := vector.New([]int{1, 2, 3})
//	b := vector.New([]int{4, 5, 6})
//	sum, err := vector.Dot(a, b) // 32, nil
//
// Determinism:
//
//	Dot accumulates left to right starting from the zero value of T, so the
//	result depends only on the inputs, never on scheduling.
//
// Complexity:
//
//	New/Slice: O(n) copy; At/Len: O(1); Dot: O(n) time, O(1) space.
package vector
