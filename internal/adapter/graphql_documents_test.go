// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/MKhiriev/go-pet-storefront/models"
)

// storefrontSchema is the part of the storefront API the client calls.
const storefrontSchema = `
type Query {
  customerEmailLogin(login: EmailLoginInput!): AuthResult
  customerGoogleLogin(login: GoogleLoginInput!): AuthResult
}

type Mutation {
  customerLogout(logout: LogoutInput!): Customer
  customerRegistration(register: RegistrationInput!): Customer
}

input EmailLoginInput {
  email: String!
  password: String!
}

input GoogleLoginInput {
  token: String!
}

input LogoutInput {
  email: String!
}

input RegistrationInput {
  name: String!
  email: String!
  password: String!
}

type AuthResult {
  name: String
  email: String
  accessToken: String
}

type Customer {
  name: String
  email: String
}
`

func TestDocuments_ValidAgainstSchema(t *testing.T) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "storefront.graphql", Input: storefrontSchema})
	require.Nil(t, err)

	tests := []struct {
		name      string
		document  string
		operation string
		variables []string
	}{
		{name: "email login", document: emailLoginQuery, operation: opEmailLogin, variables: []string{"email", "password"}},
		{name: "google login", document: googleLoginQuery, operation: opGoogleLogin, variables: []string{"token"}},
		{name: "logout", document: logoutMutation, operation: opLogout, variables: []string{"email"}},
		{name: "register", document: registerMutation, operation: opRegister, variables: []string{"name", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, errs := gqlparser.LoadQuery(schema, tt.document)
			require.Empty(t, errs)
			require.Len(t, doc.Operations, 1)

			op := doc.Operations[0]
			assert.Equal(t, tt.operation, op.Name)

			declared := make([]string, 0, len(op.VariableDefinitions))
			for _, v := range op.VariableDefinitions {
				declared = append(declared, v.Variable)
			}
			assert.ElementsMatch(t, tt.variables, declared)
		})
	}
}

func TestOperations_PostDocumentWithVariables(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		call      func(g *graphQLAuthGateway) error
		operation string
		variables map[string]any
	}{
		{
			name: "email login",
			body: `{"data":{"customerEmailLogin":{"name":"Ann","email":"ann@x.io","accessToken":"t"}}}`,
			call: func(g *graphQLAuthGateway) error {
				_, err := g.EmailLogin(context.Background(), "ann@x.io", "cipher")
				return err
			},
			operation: opEmailLogin,
			variables: map[string]any{"email": "ann@x.io", "password": "cipher"},
		},
		{
			name: "google login",
			body: `{"data":{"customerGoogleLogin":{"name":"Ann","email":"ann@x.io","accessToken":"t"}}}`,
			call: func(g *graphQLAuthGateway) error {
				_, err := g.GoogleLogin(context.Background(), "google-id-token")
				return err
			},
			operation: opGoogleLogin,
			variables: map[string]any{"token": "google-id-token"},
		},
		{
			name: "logout",
			body: `{"data":{"customerLogout":{"name":"Ann","email":"ann@x.io"}}}`,
			call: func(g *graphQLAuthGateway) error {
				_, err := g.Logout(context.Background(), "ann@x.io")
				return err
			},
			operation: opLogout,
			variables: map[string]any{"email": "ann@x.io"},
		},
		{
			name: "register",
			body: `{"data":{"customerRegistration":{"name":"Ann","email":"ann@x.io"}}}`,
			call: func(g *graphQLAuthGateway) error {
				_, err := g.Register(context.Background(), "Ann", "ann@x.io", "cipher")
				return err
			},
			operation: opRegister,
			variables: map[string]any{"name": "Ann", "email": "ann@x.io", "password": "cipher"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := graphQLServer(t, tt.body, func(_ *http.Request, req models.GraphQLRequest) {
				assert.Equal(t, tt.operation, req.OperationName)
				assert.Equal(t, tt.variables, req.Variables)
				for name := range tt.variables {
					assert.Contains(t, req.Query, "$"+name+": String!")
					assert.Contains(t, req.Query, ": $"+name)
				}
			})
			defer srv.Close()

			require.NoError(t, tt.call(newTestGateway(t, srv.URL)))
		})
	}
}
