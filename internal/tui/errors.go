// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrNilServices is returned by [New] without client services.
	ErrNilServices = errors.New("tui: client services are nil")

	// ErrNilSession is returned by [New] without a session store.
	ErrNilSession = errors.New("tui: session store is nil")
)
