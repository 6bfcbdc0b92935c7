// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package textfield implements the state of a single-line text input with a
// label, helper or error text, and clear, password-visibility and loading
// affordances. The value is owned by the host: the field only reports edits
// through Props.OnChange and never changes Props.Value itself.
package textfield

import (
	"github.com/google/uuid"
)

// Props is the host-supplied configuration, pushed again on every render.
type Props struct {
	Value    string
	OnChange func(value string)

	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string

	Disabled bool
	Invalid  bool
	Loading  bool

	Variant Variant
	Size    Size
	Type    InputType

	Clearable      bool
	PasswordToggle bool

	ID   string
	Name string
}

// Field is one mounted text input. The only state it owns is the password
// visibility flag and its element id.
type Field struct {
	props        Props
	generatedID  string
	showPassword bool
}

func New(props Props) *Field {
	return &Field{
		props:       props,
		generatedID: "tf-" + uuid.NewString(),
	}
}

// SetProps replaces the host configuration. Local state is kept.
func (f *Field) SetProps(props Props) { f.props = props }

func (f *Field) Props() Props { return f.props }

// SetValue updates only the host-owned value, for hosts that push the value
// separately from the rest of the configuration.
func (f *Field) SetValue(value string) { f.props.Value = value }

func (f *Field) Value() string { return f.props.Value }

// ID is the element id: the host-supplied one, or a generated id stable for
// the lifetime of the field.
func (f *Field) ID() string {
	if f.props.ID != "" {
		return f.props.ID
	}
	return f.generatedID
}

func (f *Field) DescriptionID() string { return f.ID() + "-desc" }

func (f *Field) IsPassword() bool { return f.props.Type == TypePassword }

// Showing reports whether a toggleable password is currently revealed.
func (f *Field) Showing() bool {
	return f.IsPassword() && f.props.PasswordToggle && f.showPassword
}

// EffectiveType is the type the input is rendered with.
func (f *Field) EffectiveType() InputType {
	if f.Showing() {
		return TypeText
	}
	return f.props.Type.orDefault()
}

// Inactive reports whether the input rejects edits; loading implies it.
func (f *Field) Inactive() bool { return f.props.Disabled || f.props.Loading }

func (f *Field) ShowSpinner() bool { return f.props.Loading }

func (f *Field) ShowClear() bool {
	return !f.props.Loading && f.props.Clearable && f.props.Value != ""
}

func (f *Field) ShowToggle() bool {
	return !f.props.Loading && f.IsPassword() && f.props.PasswordToggle
}

// ToggleLabel is the accessible label of the visibility toggle.
func (f *Field) ToggleLabel() string {
	if f.Showing() {
		return "Hide password"
	}
	return "Show password"
}

// Invalid is the aria-invalid state: set explicitly or implied by an error
// message.
func (f *Field) Invalid() bool {
	return f.props.Invalid || f.props.ErrorMessage != ""
}

// Edit reports a user edit. The change is forwarded to the host unless the
// field is inactive or the value did not change.
func (f *Field) Edit(value string) bool {
	if f.Inactive() || value == f.props.Value {
		return false
	}
	f.emit(value)
	return true
}

// Clear emits an empty value. It is a no-op when the clear affordance is
// not shown.
func (f *Field) Clear() bool {
	if !f.ShowClear() {
		return false
	}
	f.emit("")
	return true
}

// ToggleVisibility flips password visibility. It never emits a change.
func (f *Field) ToggleVisibility() bool {
	if !f.ShowToggle() {
		return false
	}
	f.showPassword = !f.showPassword
	return true
}

func (f *Field) emit(value string) {
	if f.props.OnChange != nil {
		f.props.OnChange(value)
	}
}

// Description is the helper/error region below the input.
type Description struct {
	ID      string
	Text    string
	Alert   bool
	Present bool
}

// Description prefers the error message over the helper text. Only error
// messages are announced as alerts.
func (f *Field) Description() Description {
	switch {
	case f.props.ErrorMessage != "":
		return Description{ID: f.DescriptionID(), Text: f.props.ErrorMessage, Alert: true, Present: true}
	case f.props.HelperText != "":
		return Description{ID: f.DescriptionID(), Text: f.props.HelperText, Present: true}
	default:
		return Description{}
	}
}
