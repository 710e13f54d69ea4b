// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the storefront client runtime.
//
// It runs the terminal UI together with the optional Google callback
// listener and releases the local database when the UI exits.
package client
