// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid password", err: ErrInvalidPassword, want: "Invalid password"},
		{name: "wrong credentials", err: ErrWrongCredentials, want: "Wrong Email or Password"},
		{name: "google", err: ErrGoogleLoginFailed, want: "Google login unsuccessful. Please login in through your email."},
		{name: "empty field", err: &EmptyFieldError{Field: "name"}, want: "Invalid. name is empty"},
		{name: "wrapped empty field", err: fmt.Errorf("register: %w", &EmptyFieldError{Field: "password"}), want: "Invalid. password is empty"},
		{name: "too short", err: ErrPasswordTooShort, want: "Invalid. Password has to have a min length of 5 characters"},
		{name: "mismatch", err: ErrPasswordMismatch, want: "Invalid. Please ensure passwords are similar"},
		{name: "already registered", err: ErrEmailAlreadyRegistered, want: "This email has already been registered"},
		{name: "server unavailable", err: fmt.Errorf("%w: refused", ErrServerUnavailable), want: "Server is unavailable. Please try again later."},
		{name: "unknown", err: errors.New("boom"), want: "Something went wrong. Please try again."},
		{name: "request failed", err: ErrRequestFailed, want: "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestEmptyFieldError_Is(t *testing.T) {
	err := fmt.Errorf("wrap: %w", &EmptyFieldError{Field: "name"})

	assert.ErrorIs(t, err, ErrEmptyField)
	assert.NotErrorIs(t, err, ErrInvalidPetMeasure)
	assert.EqualError(t, errors.Unwrap(err), "name is empty")
}
