// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" ||
		!strings.HasPrefix(cfg.Adapter.GraphQLPath, "/") ||
		cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.CipherKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.OAuth.CallbackAddress != "" {
		var addr NetAddress
		if err := addr.Set(cfg.OAuth.CallbackAddress); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOAuthConfigs, err)
		}
	}

	return nil
}
