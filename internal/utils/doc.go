// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client layers: the
// resty-based HTTP client, request-id generation and context keys, JWT claim
// inspection and JSON response writing.
package utils
