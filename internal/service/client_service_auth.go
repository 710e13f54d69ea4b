// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-pet-storefront/internal/adapter"
	"github.com/MKhiriev/go-pet-storefront/internal/crypto"
	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/models"
)

// MinPasswordLength is the shortest password accepted by login and
// registration, in characters.
const MinPasswordLength = 5

type clientAuthService struct {
	gateway adapter.AuthGateway
	cipher  crypto.CredentialCipher
	session SessionStore

	logger *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService].
func NewClientAuthService(gateway adapter.AuthGateway, cipher crypto.CredentialCipher, session SessionStore, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{gateway: gateway, cipher: cipher, session: session, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, fields models.LoginFields) (models.UserDetails, error) {
	if utf8.RuneCountInString(fields.Password) < MinPasswordLength {
		return models.UserDetails{}, ErrInvalidPassword
	}

	passwordCipher, err := a.cipher.Encrypt(fields.Password)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("error obfuscating password")
		return models.UserDetails{}, fmt.Errorf("%w: %v", ErrObfuscatingPassword, err)
	}

	account, err := a.gateway.EmailLogin(ctx, fields.EmailAddress, passwordCipher)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.Login").Msg("email login failed")
		return models.UserDetails{}, mapGatewayError(err, ErrWrongCredentials)
	}

	if err = a.establishSession(ctx, account); err != nil {
		return models.UserDetails{}, err
	}
	a.logger.Info().Str("func", "*clientAuthService.Login").Str("email", account.Email).Msg("customer logged in")

	return account.UserDetails, nil
}

func (a *clientAuthService) GoogleLogin(ctx context.Context, oauthToken string) (models.UserDetails, error) {
	if oauthToken == "" {
		return models.UserDetails{}, ErrGoogleLoginFailed
	}

	account, err := a.gateway.GoogleLogin(ctx, oauthToken)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.GoogleLogin").Msg("google login failed")
		return models.UserDetails{}, mapGatewayError(err, ErrGoogleLoginFailed)
	}

	if err = a.establishSession(ctx, account); err != nil {
		return models.UserDetails{}, err
	}
	a.logger.Info().Str("func", "*clientAuthService.GoogleLogin").Str("email", account.Email).Msg("customer logged in with google")

	return account.UserDetails, nil
}

func (a *clientAuthService) Register(ctx context.Context, fields models.RegistrationFields) (models.UserDetails, error) {
	if err := validateRegistration(fields); err != nil {
		return models.UserDetails{}, err
	}

	passwordCipher, err := a.cipher.Encrypt(fields.Password)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Msg("error obfuscating password")
		return models.UserDetails{}, fmt.Errorf("%w: %v", ErrObfuscatingPassword, err)
	}

	details, err := a.gateway.Register(ctx, fields.Name, fields.EmailAddress, passwordCipher)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.Register").Msg("registration failed")
		return models.UserDetails{}, mapGatewayError(err, ErrRequestFailed)
	}

	a.logger.Info().Str("func", "*clientAuthService.Register").Str("email", details.Email).Msg("customer registered")
	return details, nil
}

func (a *clientAuthService) Logout(ctx context.Context) {
	email := a.session.UserDetails().Email

	if _, err := a.gateway.Logout(ctx, email); err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.Logout").Msg("remote logout failed, clearing local session anyway")
	}

	a.gateway.SetToken("")
	a.session.SetLoggedOutUserDetails()
}

// establishSession stores the customer unless the caller gave up while the
// request was in flight; in that case the issued token is dropped too.
func (a *clientAuthService) establishSession(ctx context.Context, account models.Account) error {
	if err := ctx.Err(); err != nil {
		a.gateway.SetToken("")
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.establishSession").Msg("login abandoned, session not stored")
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	a.session.SetLoggedInUserDetails(account.UserDetails)
	return nil
}

// validateRegistration checks every field in declaration order, then the
// password length, then the confirmation.
func validateRegistration(fields models.RegistrationFields) error {
	for _, f := range fields.Fields() {
		if f.Value == "" {
			return &EmptyFieldError{Field: f.Key}
		}
	}

	if utf8.RuneCountInString(fields.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if fields.Password != fields.PasswordConfirm {
		return ErrPasswordMismatch
	}

	return nil
}
