// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the tuikit command line using Cobra. Commands stay
// thin: they load configuration and hand off to the tui, html and web
// packages.
package cli
