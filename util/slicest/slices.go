// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds generic slice helpers used across the UI packages.
package slicest

// Map

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}

// Filter

// FilterI keeps the elements for which fn reports true, in order.
// - I: Provides index to callback.
func FilterI[T any, S ~[]T](s S, fn func(int, T) bool) S {
	result := make(S, 0, len(s))
	for i, v := range s {
		if fn(i, v) {
			result = append(result, v)
		}
	}
	return result
}

// Filter keeps the elements for which fn reports true, in order.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	return FilterI(s, func(_ int, t T) bool {
		return fn(t)
	})
}

// Pick returns the elements at the given indices, in the order given.
// Out of range indices are skipped.
func Pick[T any, S ~[]T](s S, indices []int) S {
	result := make(S, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s) {
			result = append(result, s[i])
		}
	}
	return result
}
