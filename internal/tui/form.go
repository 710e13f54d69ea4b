// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
	charLimit   int
}

// form is an ordered set of text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...fieldSpec) form {
	f := form{
		labels: make([]string, 0, len(fields)),
		inputs: make([]textinput.Model, 0, len(fields)),
	}

	for _, field := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = field.placeholder
		in.CharLimit = field.charLimit
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	f.applyFocus()

	return f
}

func (f *form) focusNext() {
	f.focus = (f.focus + 1) % len(f.inputs)
	f.applyFocus()
}

func (f *form) focusPrev() {
	f.focus--
	if f.focus < 0 {
		f.focus = len(f.inputs) - 1
	}
	f.applyFocus()
}

func (f *form) applyFocus() {
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// update passes msg to the focused input only.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.focus = 0
	f.applyFocus()
}

func (f *form) view() string {
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString(":\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
