// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the storefront GraphQL API.
//
// [AuthGateway] exposes the four customer auth operations. The API reports
// failed logins and registrations through empty fields in an otherwise normal
// response; the gateway converts those into the sentinel errors of this
// package, so callers never compare against empty strings.
//
// Transport outcomes are mapped as well: unreachable servers become
// [ErrServerUnavailable], GraphQL "errors" become [ErrGraphQL].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pet-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_gateway_mock.go -package=mock

// AuthGateway is the client side of the storefront customer auth API.
type AuthGateway interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// EmailLogin authenticates email with the obfuscated password. On success
	// the access token is stored via SetToken. Returns [ErrAuthRejected] when
	// the API answers with an empty access token.
	EmailLogin(ctx context.Context, email, passwordCipher string) (models.Account, error)

	// GoogleLogin authenticates a Google OAuth id token. On success the access
	// token is stored via SetToken. Returns [ErrAuthRejected] when the access
	// token is empty or absent.
	GoogleLogin(ctx context.Context, oauthToken string) (models.Account, error)

	// Logout ends the server-side session of email and clears the stored
	// token whatever the outcome.
	Logout(ctx context.Context, email string) (models.UserDetails, error)

	// Register creates a customer account. Returns [ErrAlreadyRegistered] when
	// the API answers with an empty name.
	Register(ctx context.Context, name, email, passwordCipher string) (models.UserDetails, error)
}
