// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-storefront/models"
)

// textCapturer is implemented by pages whose printable keys go to inputs.
type textCapturer interface {
	CapturesText() bool
}

// leaver is implemented by pages that stop background work when they are
// navigated away from.
type leaver interface {
	Leave()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info overlay
// 3) handles NavigateTo messages
// 4) routes command results to the page that started them
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string
	buildInfo   models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Quit):
			r.leaveCurrent()
			return r, tea.Quit
		case key.Matches(k, keys.BuildInfo):
			if !r.capturesText() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case key.Matches(k, keys.Back):
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		if nav.Page != r.currentName {
			r.leaveCurrent()
		}
		r.showBuildInfo = false
		r.current = next
		r.currentName = nav.Page

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Results of page commands go to their page even after navigation.
	if pm, ok := msg.(pageMsg); ok {
		page, exists := r.pages[pm.targetPage()]
		if !exists {
			return r, nil
		}
		updated, cmd := page.Update(msg)
		r.pages[pm.targetPage()] = updated
		if pm.targetPage() == r.currentName {
			r.current = updated
		}
		return r, cmd
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

// CurrentPage returns the name of the active page.
func (r RootModel) CurrentPage() string {
	return r.currentName
}

func (r RootModel) capturesText() bool {
	c, ok := r.current.(textCapturer)
	return ok && c.CapturesText()
}

func (r RootModel) leaveCurrent() {
	if l, ok := r.current.(leaver); ok {
		l.Leave()
	}
}
