// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

func Clamp[T cmp.Ordered](_min, _wanted, _max T) T {
	return min(max(_min, _wanted), _max)
}

// ClampIndex keeps i inside [0, n); n == 0 yields 0.
func ClampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return Clamp(0, i, n-1)
}
