// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/store"
	"github.com/MKhiriev/go-pet-storefront/models"
)

type clientProfileService struct {
	pets         store.PetRepository
	transactions store.TransactionRepository

	logger *logger.Logger
}

// NewClientProfileService constructs a [ClientProfileService].
func NewClientProfileService(pets store.PetRepository, transactions store.TransactionRepository, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{pets: pets, transactions: transactions, logger: logger}
}

func (p *clientProfileService) Pets(ctx context.Context, email string) ([]models.Pet, error) {
	if email == "" {
		return nil, ErrNotLoggedIn
	}

	pets, err := p.pets.ListPets(ctx, email)
	if err != nil {
		p.logger.Err(err).Str("func", "*clientProfileService.Pets").Msg("error listing pets")
		return nil, mapStoreError(err)
	}

	return pets, nil
}

func (p *clientProfileService) AddPet(ctx context.Context, email string, pet models.Pet) (models.Pet, error) {
	if email == "" {
		return models.Pet{}, ErrNotLoggedIn
	}

	pet.Name = strings.TrimSpace(pet.Name)
	pet.Species = strings.TrimSpace(pet.Species)
	if err := validatePet(pet); err != nil {
		return models.Pet{}, err
	}

	pet.OwnerEmail = email
	saved, err := p.pets.SavePet(ctx, pet)
	if err != nil {
		p.logger.Err(err).Str("func", "*clientProfileService.AddPet").Msg("error saving pet")
		return models.Pet{}, mapStoreError(err)
	}

	return saved, nil
}

func (p *clientProfileService) Transactions(ctx context.Context, email string) ([]models.Transaction, error) {
	if email == "" {
		return nil, ErrNotLoggedIn
	}

	transactions, err := p.transactions.ListTransactions(ctx, email)
	if err != nil {
		p.logger.Err(err).Str("func", "*clientProfileService.Transactions").Msg("error listing transactions")
		return nil, mapStoreError(err)
	}

	return transactions, nil
}

func validatePet(pet models.Pet) error {
	if pet.Name == "" {
		return &EmptyFieldError{Field: "name"}
	}
	if pet.Species == "" {
		return &EmptyFieldError{Field: "species"}
	}
	if !validMeasure(pet.AgeYears) {
		return &InvalidMeasureError{Field: "age", Value: strconv.FormatFloat(pet.AgeYears, 'f', -1, 64)}
	}
	if !validMeasure(pet.WeightKg) {
		return &InvalidMeasureError{Field: "weight", Value: strconv.FormatFloat(pet.WeightKg, 'f', -1, 64)}
	}

	return nil
}

func validMeasure(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ParseMeasure parses the raw text of a numeric pet field. Empty input is
// zero; anything that is not a finite non-negative number is an
// [*InvalidMeasureError] naming field.
func ParseMeasure(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !validMeasure(v) {
		return 0, &InvalidMeasureError{Field: field, Value: raw}
	}

	return v, nil
}
