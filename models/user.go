// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the plain data types shared by the storefront
// client layers: session details, form buffers, remote auth results, pet
// records and order history.
package models

import "time"

// UserDetails identifies the customer held by the session store.
// An empty Name means no customer is authenticated.
type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsAuthenticated reports whether d describes a logged-in customer.
func (d UserDetails) IsAuthenticated() bool {
	return d.Name != ""
}

// Account is the outcome of a successful email or Google login.
type Account struct {
	UserDetails

	// AccessToken is the bearer token issued by the storefront API.
	AccessToken string

	// ExpiresAt is taken from the token "exp" claim when the token is a JWT.
	// Zero when the token carries no expiry.
	ExpiresAt time.Time
}
