// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

const (
	opEmailLogin  = "AuthenticateUser"
	opGoogleLogin = "AuthenticateGoogleUser"
	opLogout      = "userLogout"
	opRegister    = "registerNewUser"
)

const (
	emailLoginQuery = `query AuthenticateUser($email: String!, $password: String!) {
  customerEmailLogin(login: {email: $email, password: $password}) {
    name
    email
    accessToken
  }
}`

	googleLoginQuery = `query AuthenticateGoogleUser($token: String!) {
  customerGoogleLogin(login: {token: $token}) {
    name
    email
    accessToken
  }
}`

	logoutMutation = `mutation userLogout($email: String!) {
  customerLogout(logout: {email: $email}) {
    name
    email
  }
}`

	registerMutation = `mutation registerNewUser($name: String!, $email: String!, $password: String!) {
  customerRegistration(register: {name: $name, email: $email, password: $password}) {
    name
    email
  }
}`
)
