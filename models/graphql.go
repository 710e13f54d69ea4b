// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// GraphQLRequest is the JSON body posted to the storefront GraphQL endpoint.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// GraphQLError is a single entry of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// GraphQLResponse is the envelope of every GraphQL response. Data is decoded
// by the caller into the operation-specific shape.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// AuthResult is the payload returned by the customer auth operations.
// The API reports failures through empty fields (empty AccessToken on login,
// empty Name on registration), so this type must not travel past the
// adapter.
type AuthResult struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}
