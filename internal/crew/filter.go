// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package crew

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/toeirei/tuikit/util/slicest"
	"golang.org/x/text/cases"
)

type FilterMode int

const (
	FilterSubstring FilterMode = iota
	FilterFuzzy
)

func (m FilterMode) String() string {
	if m == FilterFuzzy {
		return "fuzzy"
	}
	return "substring"
}

func (m *FilterMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "substring":
		*m = FilterSubstring
	case "fuzzy":
		*m = FilterFuzzy
	default:
		return fmt.Errorf("unknown filter mode %q", text)
	}
	return nil
}

func (m FilterMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Filter keeps the members whose name matches query, in roster order. An
// empty query keeps everyone; whitespace is matched like any other text.
func Filter(members []Member, query string, mode FilterMode) []Member {
	if query == "" {
		return members
	}

	if mode == FilterFuzzy {
		names := slicest.Map(members, func(m Member) string { return m.Name })
		indices := slicest.Map(fuzzy.Find(query, names), func(m fuzzy.Match) int { return m.Index })
		slices.Sort(indices)
		return slicest.Pick(members, indices)
	}

	fold := cases.Fold()
	needle := fold.String(query)
	return slicest.Filter(members, func(m Member) bool {
		return strings.Contains(fold.String(m.Name), needle)
	})
}
