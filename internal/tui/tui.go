// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the storefront client: the
// account panel, the profile page and the pet form, routed by [RootModel].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/service"
	"github.com/MKhiriev/go-pet-storefront/internal/session"
	"github.com/MKhiriev/go-pet-storefront/models"
)

type TUI struct {
	services   *service.ClientServices
	session    *session.Store
	googleHint string
	logger     *logger.Logger
}

// New builds the TUI. googleHint is the Google callback URL shown on the
// login form; empty hides it.
func New(services *service.ClientServices, store *session.Store, googleHint string, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	if store == nil {
		return nil, ErrNilSession
	}
	return &TUI{services: services, session: store, googleHint: googleHint, logger: logger}, nil
}

// NewRoot builds the page router with the account panel opened.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageAccount: NewAccountModel(ctx, t.services.AuthService, t.session, t.googleHint, t.logger),
		pageProfile: NewProfileModel(ctx, t.services.ProfileService, t.session, t.logger),
		pagePetForm: NewPetFormModel(ctx, t.services.ProfileService, t.session, t.logger),
	}
	return NewRootModel(pages, pageAccount, t.services.AppInfoService.BuildInfo(ctx))
}

// Run blocks until the customer quits or ctx is done. Tokens received on
// googleTokens are handed to the account panel; a nil channel is allowed.
func (t *TUI) Run(ctx context.Context, googleTokens <-chan string) error {
	program := tea.NewProgram(t.NewRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.session.Subscribe(func(details models.UserDetails) {
		program.Send(SessionChangedMsg{Details: details})
	})
	defer unsubscribe()

	forwardCtx, stopForward := context.WithCancel(ctx)
	defer stopForward()
	go forwardTokens(forwardCtx, googleTokens, program.Send)

	_, err := program.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func forwardTokens(ctx context.Context, tokens <-chan string, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case token, ok := <-tokens:
			if !ok {
				return
			}
			send(GoogleTokenMsg{Token: token})
		}
	}
}
