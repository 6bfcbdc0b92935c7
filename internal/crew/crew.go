// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package crew holds the demo roster shown by the terminal and web hosts.
package crew

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/toeirei/tuikit/widgets/datatable"
)

const dateLayout = "2006-01-02"

type Member struct {
	Name   string
	Role   string
	Joined time.Time
	Hours  int
}

func date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Roster returns a fresh copy of the demo crew.
func Roster() []Member {
	return []Member{
		{Name: "Anup Patil", Role: "Seafarer", Joined: date("2025-07-23"), Hours: 160},
		{Name: "Santosh Rathod", Role: "Captain", Joined: date("2025-06-12"), Hours: 182},
		{Name: "Aniket Singh", Role: "Engineer", Joined: date("2025-08-01"), Hours: 120},
	}
}

// Key identifies a member for identity-keyed selection.
func Key(m Member) string { return m.Name }

func Columns() []datatable.Column[Member] {
	return []datatable.Column[Member]{
		datatable.Field("name", "Name", func(m Member) string { return m.Name }).WithSortable(),
		datatable.Field("role", "Role", func(m Member) string { return m.Role }).WithSortable(),
		{
			Key:      "joined",
			Title:    "Joined",
			Value:    func(m Member) any { return m.Joined },
			Sortable: true,
			Render: func(v any, _ Member) string {
				return v.(time.Time).Format(dateLayout)
			},
		},
		datatable.Field("hours", "Hours", func(m Member) int { return m.Hours }).
			WithSortable().
			WithRender(func(v any, _ Member) string {
				return humanize.Comma(int64(v.(int))) + " h"
			}),
	}
}

// TSV renders members as tab separated lines with a header, in the given
// order.
func TSV(members []Member) string {
	var b strings.Builder
	b.WriteString("Name\tRole\tJoined\tHours\n")
	for _, m := range members {
		b.WriteString(strings.Join([]string{
			m.Name,
			m.Role,
			m.Joined.Format(dateLayout),
			humanize.Comma(int64(m.Hours)),
		}, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
