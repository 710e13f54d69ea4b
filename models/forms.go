// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginFields is the transient buffer behind the email login form.
type LoginFields struct {
	EmailAddress string
	Password     string
}

// RegistrationFields is the transient buffer behind the registration form.
type RegistrationFields struct {
	Name            string
	EmailAddress    string
	Password        string
	PasswordConfirm string
}

// FormField is a single named value of a form, used to validate fields in a
// stable order.
type FormField struct {
	Key   string
	Value string
}

// Fields returns the registration fields in the order they are validated.
func (f RegistrationFields) Fields() []FormField {
	return []FormField{
		{Key: "name", Value: f.Name},
		{Key: "emailAddress", Value: f.EmailAddress},
		{Key: "password", Value: f.Password},
		{Key: "passwordConfirm", Value: f.PasswordConfirm},
	}
}
