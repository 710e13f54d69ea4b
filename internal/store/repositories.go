// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-pet-storefront/internal/logger"

// Repositories groups the repositories of one database.
type Repositories struct {
	Pets         PetRepository
	Transactions TransactionRepository
}

// NewRepositories builds every repository over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Pets:         NewPetRepository(db, log),
		Transactions: NewTransactionRepository(db, log),
	}
}
