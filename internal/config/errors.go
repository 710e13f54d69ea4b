// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig] validation.
var (
	// ErrInvalidAdapterConfigs: missing API address, GraphQL path or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: empty cipher key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOAuthConfigs: callback address is not host:port.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
)
