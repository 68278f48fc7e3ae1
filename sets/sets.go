// SPDX-License-Identifier: MIT
// Package: treedec/sets
//
// sets.go — merge-based set algebra over sorted, duplicate-free slices.
//
// Contract:
//   - Every input slice MUST be sorted ascending and duplicate-free.
//   - Outputs are freshly allocated (or nil when empty) and keep the same
//     ordering invariant; inputs are never mutated.
//   - All binary operations run in O(len(a)+len(b)) by a single merge pass.

// Package sets implements union, intersection and difference over sorted
// slices, the primitive every bag computation in treedec is built from.
package sets

import (
	"cmp"
	"slices"
)

// Normalize returns a sorted, duplicate-free copy of s.
// Complexity: O(n log n).
func Normalize[T cmp.Ordered](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := slices.Clone(s)
	slices.Sort(out)

	return slices.Compact(out)
}

// Union returns a ∪ b.
func Union[T cmp.Ordered](a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// Intersection returns a ∩ b.
func Intersection[T cmp.Ordered](a, b []T) []T {
	var out []T
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// Difference returns a \ b.
func Difference[T cmp.Ordered](a, b []T) []T {
	var out []T
	i, j := 0, 0
	for i < len(a) {
		if j == len(b) || a[i] < b[j] {
			out = append(out, a[i])
			i++
			continue
		}
		if b[j] < a[i] {
			j++
			continue
		}
		i++
		j++
	}

	return out
}

// Includes reports whether every element of sub is contained in super.
// It mirrors the classic std::includes merge test.
func Includes[T cmp.Ordered](super, sub []T) bool {
	if len(sub) > len(super) {
		return false
	}
	i := 0
	for _, x := range sub {
		for i < len(super) && super[i] < x {
			i++
		}
		if i == len(super) || super[i] != x {
			return false
		}
		i++
	}

	return true
}

// Intersects reports whether a ∩ b is non-empty without allocating.
func Intersects[T cmp.Ordered](a, b []T) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			return true
		}
	}

	return false
}

// DifferenceSize returns |a \ b| without allocating.
func DifferenceSize[T cmp.Ordered](a, b []T) int {
	n := 0
	i, j := 0, 0
	for i < len(a) {
		if j == len(b) || a[i] < b[j] {
			n++
			i++
			continue
		}
		if b[j] < a[i] {
			j++
			continue
		}
		i++
		j++
	}

	return n
}

// IntersectionSize returns |a ∩ b| without allocating.
func IntersectionSize[T cmp.Ordered](a, b []T) int {
	n := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// Contains reports whether x is an element of the sorted slice s.
func Contains[T cmp.Ordered](s []T, x T) bool {
	_, ok := slices.BinarySearch(s, x)

	return ok
}

// Insert returns s with x added at its sorted position (no-op if present).
func Insert[T cmp.Ordered](s []T, x T) []T {
	pos, ok := slices.BinarySearch(s, x)
	if ok {
		return s
	}

	return slices.Insert(slices.Clone(s), pos, x)
}

// Remove returns s without x (no-op if absent).
func Remove[T cmp.Ordered](s []T, x T) []T {
	pos, ok := slices.BinarySearch(s, x)
	if !ok {
		return s
	}

	return slices.Delete(slices.Clone(s), pos, pos+1)
}
