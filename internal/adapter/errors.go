// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrServerUnavailable: the API could not be reached (dial failure, DNS,
	// timeout, 502/503/504).
	ErrServerUnavailable = errors.New("storefront api is unavailable")

	// ErrUnexpectedStatus: the API answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrGraphQL: the response carried a non-empty "errors" array.
	ErrGraphQL = errors.New("graphql error")

	// ErrMalformedResponse: the response body is not a GraphQL envelope or
	// lacks the requested field.
	ErrMalformedResponse = errors.New("malformed graphql response")

	// ErrAuthRejected: login answered with an empty access token.
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrAlreadyRegistered: registration answered with an empty name.
	ErrAlreadyRegistered = errors.New("email already registered")
)
