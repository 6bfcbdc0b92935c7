// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package windowtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	h := NewHandler("tuikit", " - ")
	assert.Equal(t, "tuikit", h.Title())
	assert.NotNil(t, h.Init())

	assert.NotNil(t, h.Handle(Set("2 selected")()))
	assert.Equal(t, "tuikit - 2 selected", h.Title())
	assert.Nil(t, h.Handle(Set("2 selected")()), "same title is not resent")

	h.Handle(Set("")())
	assert.Equal(t, "tuikit", h.Title())

	assert.Nil(t, h.Handle("unrelated"))
}
