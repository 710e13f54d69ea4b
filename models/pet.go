// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// Pet is a pet record owned by a storefront customer.
type Pet struct {
	ID            int64
	OwnerEmail    string
	Name          string
	Gender        string
	Species       string
	Breed         string
	AgeYears      float64
	WeightKg      float64
	HealthConcern string
	CreatedAt     time.Time
}

// Row returns the pet's display cells in profile table order.
func (p Pet) Row() []string {
	return []string{
		p.Name,
		p.Gender,
		p.Species,
		p.Breed,
		formatNumber(p.AgeYears),
		formatNumber(p.WeightKg),
		p.HealthConcern,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
