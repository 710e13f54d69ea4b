// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey stores the id of the outbound request or inbound callback
// being processed.
var RequestIDCtxKey = contextKey("requestID")

// NewRequestID returns a time-ordered UUIDv7, or a random UUIDv4 when the v7
// generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// RequestIDFromContext returns the request id stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
