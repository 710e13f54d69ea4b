// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the customer's pet records and order history.
//
// The backend is chosen from the DSN: a postgres:// URL opens PostgreSQL
// through the pgx stdlib driver, anything else is treated as a SQLite file.
// Queries are built with squirrel using the placeholder format of the chosen
// dialect, and the schema is applied with goose from the migrations package.
package store

import (
	"context"

	"github.com/MKhiriev/go-pet-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PetRepository stores pet records per owner.
type PetRepository interface {
	// SavePet inserts pet and returns it with ID and CreatedAt set.
	// Returns [ErrPetAlreadyExists] when the owner already has a pet with
	// the same name.
	SavePet(ctx context.Context, pet models.Pet) (models.Pet, error)

	// ListPets returns the pets of ownerEmail in insertion order.
	ListPets(ctx context.Context, ownerEmail string) ([]models.Pet, error)
}

// TransactionRepository reads the order history.
type TransactionRepository interface {
	// ListTransactions returns the orders of ownerEmail together with the
	// shared demo orders (empty owner), newest first.
	ListTransactions(ctx context.Context, ownerEmail string) ([]models.Transaction, error)
}
