// Package mathutil holds small generic helpers over slices, built on
// golang.org/x/exp's slices/constraints, which the teacher's go.mod already
// pulls in. No other package of this module imports it; its own tests are
// its only callers.
package mathutil

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sum adds up a slice of any ordered numeric type.
func Sum[T constraints.Integer | constraints.Float](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Equal reports whether two slices have the same length and elements in the
// same order, comparing with eq.
func Equal[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SortedCopy returns a sorted copy of xs, leaving xs untouched.
func SortedCopy[T constraints.Ordered](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}

// IsPermutation reports whether xs is exactly the set {0, ..., n-1} with no
// repeats - the plain-Go check pkg/circuit.checkBijection specializes with a
// bitset for speed at large N.
func IsPermutation(xs []int, n int) bool {
	if len(xs) != n {
		return false
	}
	sorted := SortedCopy(xs)
	for i, v := range sorted {
		if v != i {
			return false
		}
	}
	return true
}
