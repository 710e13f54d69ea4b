// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ViewMode is one of the mutually exclusive modes of the account panel.
type ViewMode int

const (
	ViewLogin ViewMode = iota
	ViewRegistration
	ViewLoggedIn
)

func (m ViewMode) String() string {
	switch m {
	case ViewLogin:
		return "login"
	case ViewRegistration:
		return "registration"
	case ViewLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}
