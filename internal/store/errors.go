// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPetAlreadyExists is returned when the owner already has a pet with
	// the same name.
	ErrPetAlreadyExists = errors.New("pet already exists")

	// ErrUnsupportedDSN is returned when the DSN names a database the client
	// has no driver for.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
