// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/models"
)

var petColumns = []string{
	"id", "owner_email", "name", "gender", "species", "breed",
	"age_years", "weight_kg", "health_concern", "created_at",
}

// petRepository is the SQL implementation of [PetRepository] over the
// "pets" table.
type petRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPetRepository constructs a [PetRepository] backed by db.
func NewPetRepository(db *DB, logger *logger.Logger) PetRepository {
	logger.Debug().Msg("creating pet repository")
	return &petRepository{
		db:     db,
		logger: logger,
	}
}

// SavePet implements [PetRepository]. CreatedAt defaults to the current UTC
// time. Unique violations on (owner_email, name) map to
// [ErrPetAlreadyExists].
func (r *petRepository) SavePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.builder.
		Insert("pets").
		Columns("owner_email", "name", "gender", "species", "breed",
			"age_years", "weight_kg", "health_concern", "created_at").
		Values(pet.OwnerEmail, pet.Name, pet.Gender, pet.Species, pet.Breed,
			pet.AgeYears, pet.WeightKg, pet.HealthConcern, pet.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Pet{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "*petRepository.SavePet", func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&pet.ID)
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Pet{}, ErrPetAlreadyExists
		}

		r.logger.Err(err).Str("func", "*petRepository.SavePet").Msg("error saving pet")
		return models.Pet{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return pet, nil
}

// ListPets implements [PetRepository].
func (r *petRepository) ListPets(ctx context.Context, ownerEmail string) ([]models.Pet, error) {
	query, args, err := r.db.builder.
		Select(petColumns...).
		From("pets").
		Where(sq.Eq{"owner_email": ownerEmail}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, "*petRepository.ListPets", func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*petRepository.ListPets").Msg("error querying pets")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pets := make([]models.Pet, 0)
	for rows.Next() {
		var p models.Pet
		if err = rows.Scan(&p.ID, &p.OwnerEmail, &p.Name, &p.Gender, &p.Species, &p.Breed,
			&p.AgeYears, &p.WeightKg, &p.HealthConcern, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		pets = append(pets, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return pets, nil
}
