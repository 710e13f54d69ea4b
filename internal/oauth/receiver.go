// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package oauth runs the local listener that receives Google sign-in
// results for the terminal client.
//
// The browser side of the Google flow redirects to (or posts to)
// /auth/google/callback on the configured loopback address. Every non-empty
// id token is delivered on [Receiver.Tokens]; the client forwards it to the
// account panel, which runs the Google login.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-storefront/internal/config"
	"github.com/MKhiriev/go-pet-storefront/internal/logger"
)

const (
	// CallbackPath is the route receiving Google sign-in results.
	CallbackPath = "/auth/google/callback"

	shutdownTimeout = 5 * time.Second
	pendingTokens   = 1
)

// Receiver is the local Google callback listener.
type Receiver struct {
	address string
	server  *http.Server
	tokens  chan string

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

// NewReceiver constructs a [Receiver] for cfg.CallbackAddress. Returns
// [ErrReceiverDisabled] when the address is empty.
func NewReceiver(cfg config.ClientOAuth, logger *logger.Logger) (*Receiver, error) {
	if cfg.CallbackAddress == "" {
		return nil, ErrReceiverDisabled
	}

	r := &Receiver{
		address: cfg.CallbackAddress,
		tokens:  make(chan string, pendingTokens),
		logger:  logger,
	}
	r.server = &http.Server{
		Addr:              cfg.CallbackAddress,
		Handler:           r.Init(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return r, nil
}

// Tokens returns the channel of received Google id tokens.
func (r *Receiver) Tokens() <-chan string {
	return r.tokens
}

// Addr returns the bound address once Start succeeded, or the configured
// one before that.
func (r *Receiver) Addr() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listener != nil {
		return r.listener.Addr().String()
	}
	return r.address
}

// Start binds the listener and serves in the background until ctx is done
// or Shutdown is called. Bind errors are returned synchronously.
func (r *Receiver) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", r.address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrListen, err)
	}

	r.mu.Lock()
	r.listener = listener
	r.mu.Unlock()

	r.logger.Info().Str("address", listener.Addr().String()).Msg("google callback listener started")

	go func() {
		if err := r.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.logger.Err(err).Msg("google callback listener stopped")
		}
	}()

	go func() {
		<-ctx.Done()
		r.Shutdown()
	}()

	return nil
}

// Shutdown stops the listener, waiting up to five seconds for in-flight
// callbacks.
func (r *Receiver) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := r.server.Shutdown(ctx); err != nil {
		r.logger.Err(err).Msg("google callback listener shutdown")
	}
}

// deliver hands token to the consumer without blocking. Returns false when
// a previous token is still pending.
func (r *Receiver) deliver(token string) bool {
	select {
	case r.tokens <- token:
		return true
	default:
		return false
	}
}
