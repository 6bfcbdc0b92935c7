// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for tuikit.
//
// Usage:
//
//	go run . [flags]
//	./tuikit [flags]
//
// This launches the tuikit demo. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("tuikit: %v", err)
		os.Exit(1)
	}
}
