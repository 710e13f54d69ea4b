// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	BuildInfo key.Binding
	Back      key.Binding
	Submit    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Toggle    key.Binding
	Logout    key.Binding
	Profile   key.Binding
	AddPet    key.Binding
	RowUp     key.Binding
	RowDown   key.Binding
	Copy      key.Binding
	Reload    key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	BuildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
	Toggle:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "login/registration")),
	Logout:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
	Profile:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	AddPet:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add pet")),
	RowUp:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous order")),
	RowDown:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next order")),
	Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy tracking id")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
}

// hotKeys joins the help text of bindings for the page footer.
func hotKeys(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " | "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
