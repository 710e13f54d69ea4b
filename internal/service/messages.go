// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Texts shown to the customer.
const (
	MsgInvalidPassword         = "Invalid password"
	MsgWrongCredentials        = "Wrong Email or Password"
	MsgGoogleLoginFailed       = "Google login unsuccessful. Please login in through your email."
	MsgPasswordTooShort        = "Invalid. Password has to have a min length of 5 characters"
	MsgPasswordMismatch        = "Invalid. Please ensure passwords are similar"
	MsgEmailAlreadyRegistered  = "This email has already been registered"
	MsgServerUnavailable       = "Server is unavailable. Please try again later."
	MsgSomethingWentWrong      = "Something went wrong. Please try again."
	MsgRegistrationSuccessful  = "Registration successful. Please proceed to log in."
	MsgPetAlreadyExists        = "You already have a pet with this name"
	MsgNotLoggedIn             = "Please log in first"
	msgEmptyFieldFormat        = "Invalid. %s is empty"
	msgInvalidPetMeasureFormat = "Invalid. %s has to be a non-negative number"
)

// UserMessage returns the customer-facing text for err. Unknown errors get
// a generic text; nil gets an empty string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var emptyField *EmptyFieldError
	if errors.As(err, &emptyField) {
		return fmt.Sprintf(msgEmptyFieldFormat, emptyField.Field)
	}

	var invalidMeasure *InvalidMeasureError
	if errors.As(err, &invalidMeasure) {
		return fmt.Sprintf(msgInvalidPetMeasureFormat, invalidMeasure.Field)
	}

	switch {
	case errors.Is(err, ErrInvalidPassword):
		return MsgInvalidPassword
	case errors.Is(err, ErrWrongCredentials):
		return MsgWrongCredentials
	case errors.Is(err, ErrGoogleLoginFailed):
		return MsgGoogleLoginFailed
	case errors.Is(err, ErrPasswordTooShort):
		return MsgPasswordTooShort
	case errors.Is(err, ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return MsgEmailAlreadyRegistered
	case errors.Is(err, ErrServerUnavailable):
		return MsgServerUnavailable
	case errors.Is(err, ErrPetAlreadyExists):
		return MsgPetAlreadyExists
	case errors.Is(err, ErrNotLoggedIn):
		return MsgNotLoggedIn
	default:
		return MsgSomethingWentWrong
	}
}
