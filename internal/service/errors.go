// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPassword: login password shorter than [MinPasswordLength].
	ErrInvalidPassword = errors.New("invalid password")

	// ErrWrongCredentials: the API rejected the email and password.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrGoogleLoginFailed: the API rejected the Google token, or no token
	// was provided.
	ErrGoogleLoginFailed = errors.New("google login failed")

	// ErrEmptyField: a required field is empty. Returned wrapped in
	// [*EmptyFieldError] which names the field.
	ErrEmptyField = errors.New("field is empty")

	// ErrPasswordTooShort: registration password shorter than
	// [MinPasswordLength].
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrPasswordMismatch: password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmailAlreadyRegistered: the API refused the registration.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrServerUnavailable: the API could not be reached.
	ErrServerUnavailable = errors.New("server is unavailable")

	// ErrRequestFailed: any other failure talking to the API.
	ErrRequestFailed = errors.New("request failed")

	// ErrObfuscatingPassword: the credential cipher failed.
	ErrObfuscatingPassword = errors.New("error obfuscating password")

	// ErrNotLoggedIn: a profile operation was called without a customer.
	ErrNotLoggedIn = errors.New("customer is not logged in")

	// ErrInvalidPetMeasure: age or weight is not a non-negative number.
	// Returned wrapped in [*InvalidMeasureError].
	ErrInvalidPetMeasure = errors.New("invalid pet measure")

	// ErrPetAlreadyExists: the customer already has a pet with that name.
	ErrPetAlreadyExists = errors.New("pet already exists")

	// ErrStorageFailed: the local database failed.
	ErrStorageFailed = errors.New("storage failure")

	// ErrVersionIsNotSpecified: build info carries no version.
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// EmptyFieldError names the empty field. It matches [ErrEmptyField] with
// errors.Is.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s is empty", e.Field)
}

func (e *EmptyFieldError) Is(target error) bool {
	return target == ErrEmptyField
}

// InvalidMeasureError names the pet field that failed to parse. It matches
// [ErrInvalidPetMeasure] with errors.Is.
type InvalidMeasureError struct {
	Field string
	Value string
}

func (e *InvalidMeasureError) Error() string {
	return fmt.Sprintf("%s must be a non-negative number, got %q", e.Field, e.Value)
}

func (e *InvalidMeasureError) Is(target error) bool {
	return target == ErrInvalidPetMeasure
}
