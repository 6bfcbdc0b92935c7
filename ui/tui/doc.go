// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the terminal demo. Components live under models/ and
// render the renderer-neutral widget cores from the widgets/ tree.
package tui
