// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the storefront client's use cases: customer
// authentication against the GraphQL API and the profile data (pets and
// orders) kept in the local database.
//
// Every error returned by this package is one of its sentinels (or wraps
// one), and [UserMessage] turns it into the text shown to the customer.
package service

import (
	"context"

	"github.com/MKhiriev/go-pet-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientAuthService authenticates the customer and keeps the session store
// in sync with the outcome.
type ClientAuthService interface {
	// Login checks the password length, obfuscates the password and calls
	// the email login operation. On success the session store is set to
	// exactly the returned name and email.
	Login(ctx context.Context, fields models.LoginFields) (models.UserDetails, error)

	// GoogleLogin exchanges a Google id token for a storefront session.
	GoogleLogin(ctx context.Context, oauthToken string) (models.UserDetails, error)

	// Register validates every field before any network call, then creates
	// the account. The session store is never touched: the customer has to
	// log in afterwards.
	Register(ctx context.Context, fields models.RegistrationFields) (models.UserDetails, error)

	// Logout ends the session. Remote failures are logged and ignored; the
	// local session is always cleared.
	Logout(ctx context.Context)
}

// ClientProfileService serves the data of the profile page.
type ClientProfileService interface {
	// Pets returns the pets registered by email.
	Pets(ctx context.Context, email string) ([]models.Pet, error)

	// AddPet validates pet and stores it for email.
	AddPet(ctx context.Context, email string, pet models.Pet) (models.Pet, error)

	// Transactions returns the order history of email, newest first.
	Transactions(ctx context.Context, email string) ([]models.Transaction, error)
}

// AppInfoService exposes build information of the running client.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}

// SessionStore is the part of the session store the services write to.
type SessionStore interface {
	UserDetails() models.UserDetails
	SetLoggedInUserDetails(details models.UserDetails)
	SetLoggedOutUserDetails()
}
