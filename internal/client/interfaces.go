// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle of the storefront terminal client.
type Client interface {
	// Run starts the client and blocks until the customer quits or ctx is
	// done.
	Run(ctx context.Context) error
}
