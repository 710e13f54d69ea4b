// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-storefront/models"
)

// Page names accepted by [NavigateTo].
const (
	pageAccount = "account"
	pageProfile = "profile"
	pagePetForm = "petform"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// SessionChangedMsg is sent by the session store observer after every
// login or logout.
type SessionChangedMsg struct {
	Details models.UserDetails
}

// GoogleTokenMsg carries a Google id token received by the callback
// listener.
type GoogleTokenMsg struct {
	Token string
}

func (GoogleTokenMsg) targetPage() string { return pageAccount }

// pageMsg is implemented by messages that belong to one page whether or not
// it is active, such as results of commands the page started.
type pageMsg interface {
	targetPage() string
}

type submitOp int

const (
	opEmailLogin submitOp = iota
	opGoogleLogin
	opRegister
)

type authResultMsg struct {
	seq     int
	op      submitOp
	details models.UserDetails
	err     error
}

func (authResultMsg) targetPage() string { return pageAccount }

type logoutDoneMsg struct{}

func (logoutDoneMsg) targetPage() string { return pageAccount }

type profileLoadedMsg struct {
	seq          int
	pets         []models.Pet
	transactions []models.Transaction
	err          error
}

func (profileLoadedMsg) targetPage() string { return pageProfile }

type copiedMsg struct {
	trackingID string
	err        error
}

func (copiedMsg) targetPage() string { return pageProfile }

type petSavedMsg struct {
	seq int
	pet models.Pet
	err error
}

func (petSavedMsg) targetPage() string { return pagePetForm }

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
