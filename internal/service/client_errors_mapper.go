// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pet-storefront/internal/adapter"
	"github.com/MKhiriev/go-pet-storefront/internal/store"
)

// mapGatewayError translates an adapter error into a service error.
// rejected replaces [adapter.ErrAuthRejected], which means different things
// for email and Google logins.
func mapGatewayError(err, rejected error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrAuthRejected):
		return rejected
	case errors.Is(err, adapter.ErrAlreadyRegistered):
		return ErrEmailAlreadyRegistered
	case errors.Is(err, adapter.ErrServerUnavailable):
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	default:
		// keeps context.Canceled visible to callers
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
}

// mapStoreError translates a repository error into a service error.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrPetAlreadyExists) {
		return ErrPetAlreadyExists
	}

	return fmt.Errorf("%w: %w", ErrStorageFailed, err)
}
