package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// FormField is one labelled input of the demo form. It implements
// overlay.Field on top of a bubbles text input.
type FormField struct {
	Label    string
	input    textinput.Model
	onChange func(value string)
}

// NewFormField creates a form field with the given label, placeholder and
// initial value.
func NewFormField(label, placeholder, value string) *FormField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 32
	ti.Width = inputWidth
	return &FormField{Label: label, input: ti}
}

// Value returns the field's current text.
func (f *FormField) Value() string {
	return f.input.Value()
}

// SetValue overwrites the field's text and dispatches the change
// notification, mirroring a programmatic value change on a form input.
func (f *FormField) SetValue(v string) {
	f.input.SetValue(v)
	f.input.CursorEnd()
	if f.onChange != nil {
		f.onChange(v)
	}
}

// Focused reports whether the underlying input has focus.
func (f *FormField) Focused() bool {
	return f.input.Focused()
}
