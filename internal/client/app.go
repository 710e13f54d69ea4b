// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
)

// UI is the blocking terminal front end.
type UI interface {
	Run(ctx context.Context, googleTokens <-chan string) error
}

// TokenSource is the Google callback listener.
type TokenSource interface {
	Start(ctx context.Context) error
	Tokens() <-chan string
	Shutdown()
}

type App struct {
	ui       UI
	receiver TokenSource
	db       io.Closer
	logger   *logger.Logger
}

// NewApp assembles the client. receiver and db may be nil.
func NewApp(ui UI, receiver TokenSource, db io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	return &App{ui: ui, receiver: receiver, db: db, logger: logger}, nil
}

// Run starts the callback listener, runs the UI and cleans up after it.
// SIGINT is left to the UI, which treats ctrl+c as quit.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer a.close()

	var tokens <-chan string
	if a.receiver != nil {
		if err := a.receiver.Start(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("google sign-in is unavailable")
		} else {
			tokens = a.receiver.Tokens()
			defer a.receiver.Shutdown()
		}
	}

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx, tokens)
	a.logger.Info().Err(err).Msg("client stopped")

	return err
}

func (a *App) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local database")
	}
}
