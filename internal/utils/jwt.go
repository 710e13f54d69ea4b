// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoTokenExpiry is returned by [TokenExpiry] when the token has no "exp"
// claim.
var ErrNoTokenExpiry = errors.New("token has no expiry")

// TokenExpiry reads the "exp" claim of a JWT without verifying its
// signature. The client cannot verify storefront tokens; the value is only
// shown to the customer.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoTokenExpiry
	}

	return claims.ExpiresAt.Time, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
