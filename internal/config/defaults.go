// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultAPIAddress      = "http://localhost:4000"
	defaultGraphQLPath     = "/graphql"
	defaultRequestTimeout  = 15 * time.Second
	defaultDSN             = "storefront.db"
	defaultCipherKey       = "secret key 123"
	defaultCallbackAddress = "127.0.0.1:8085"
	defaultLogLevel        = "debug"

	oauthDisabled = "off"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CipherKey: defaultCipherKey,
			LogLevel:  defaultLogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAPIAddress,
			GraphQLPath:    defaultGraphQLPath,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		OAuth: OAuth{CallbackAddress: defaultCallbackAddress},
	}
}
