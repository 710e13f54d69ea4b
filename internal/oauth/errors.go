// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import "errors"

var (
	// ErrReceiverDisabled is returned by NewReceiver when no callback
	// address is configured.
	ErrReceiverDisabled = errors.New("google callback listener is disabled")

	// ErrListen is returned by Start when the address cannot be bound.
	ErrListen = errors.New("error binding google callback listener")

	errMissingToken = errors.New("missing google token")
)
