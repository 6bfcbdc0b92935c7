// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package textfield

import (
	"fmt"
	"strings"
)

// Variant is the visual style of the input box.
type Variant int

const (
	Outlined Variant = iota
	Filled
	Ghost
)

func (v Variant) String() string {
	switch v {
	case Filled:
		return "filled"
	case Ghost:
		return "ghost"
	default:
		return "outlined"
	}
}

func (v *Variant) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "outlined":
		*v = Outlined
	case "filled":
		*v = Filled
	case "ghost":
		*v = Ghost
	default:
		return fmt.Errorf("unknown variant %q", text)
	}
	return nil
}

func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

type Size int

const (
	Medium Size = iota
	Small
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "sm"
	case Large:
		return "lg"
	default:
		return "md"
	}
}

func (s *Size) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "md", "medium":
		*s = Medium
	case "sm", "small":
		*s = Small
	case "lg", "large":
		*s = Large
	default:
		return fmt.Errorf("unknown size %q", text)
	}
	return nil
}

func (s Size) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// InputType mirrors the type attribute of an HTML input element.
type InputType string

const (
	TypeText     InputType = "text"
	TypePassword InputType = "password"
	TypeEmail    InputType = "email"
	TypeSearch   InputType = "search"
	TypeNumber   InputType = "number"
	TypeTel      InputType = "tel"
	TypeURL      InputType = "url"
)

var knownTypes = []InputType{TypeText, TypePassword, TypeEmail, TypeSearch, TypeNumber, TypeTel, TypeURL}

func (t *InputType) UnmarshalText(text []byte) error {
	s := InputType(strings.ToLower(string(text)))
	if s == "" {
		*t = TypeText
		return nil
	}
	for _, k := range knownTypes {
		if k == s {
			*t = s
			return nil
		}
	}
	return fmt.Errorf("unknown input type %q", text)
}

func (t InputType) orDefault() InputType {
	if t == "" {
		return TypeText
	}
	return t
}
