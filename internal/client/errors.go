// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNilUI is returned by [NewApp] without a terminal UI.
var ErrNilUI = errors.New("client: ui is nil")
