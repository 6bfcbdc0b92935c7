// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package html renders the widget cores as static HTML with
// google/safehtml templates. All interactive controls are links to the page
// state they lead to.
package html

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tmpl, err := template.New("page.html").ParseFS(trustedFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Page(w io.Writer, vm PageView) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", vm)
}

func (r *Renderer) TextField(w io.Writer, vm TextFieldView) error {
	return r.tmpl.ExecuteTemplate(w, "textfield", vm)
}

func (r *Renderer) Table(w io.Writer, vm TableView) error {
	return r.tmpl.ExecuteTemplate(w, "datatable", vm)
}
