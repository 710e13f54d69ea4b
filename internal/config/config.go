// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the raw configuration assembled from every source.
// Struct tags are read by caarlos0/env.
type StructuredConfig struct {
	// App holds client-wide settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the storefront GraphQL API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local pet/transaction database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// OAuth holds the Google token callback listener settings.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-wide settings.
type App struct {
	// CipherKey is the passphrase shared with the storefront API and used to
	// obfuscate passwords before they are sent.
	// Env: APP_CIPHER_KEY
	CipherKey string `env:"CIPHER_KEY"`

	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds the storefront GraphQL API settings.
type Adapter struct {
	// HTTPAddress is the API base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GraphQLPath is the path of the GraphQL endpoint.
	// Env: ADAPTER_GRAPHQL_PATH
	GraphQLPath string `env:"GRAPHQL_PATH"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN is a SQLite file path or a postgres:// URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// OAuth holds the Google token callback listener settings.
type OAuth struct {
	// CallbackAddress is the host:port the callback listener binds to.
	// The value "off" disables the listener.
	// Env: OAUTH_CALLBACK_ADDRESS
	CallbackAddress string `env:"CALLBACK_ADDRESS"`
}

// GetStructuredConfig loads and merges configuration from args, the
// environment and an optional JSON file.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
