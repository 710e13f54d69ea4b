// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-wide settings.
type ClientApp struct {
	CipherKey string
	LogFile   string
	LogLevel  string
}

// ClientAdapter holds the settings of the GraphQL transport.
type ClientAdapter struct {
	HTTPAddress    string
	GraphQLPath    string
	RequestTimeout time.Duration
}

// ClientDB holds the local database settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientOAuth holds the Google callback listener settings. An empty
// CallbackAddress means the listener is disabled.
type ClientOAuth struct {
	CallbackAddress string
}

// ClientConfig is the validated configuration consumed by the client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	OAuth   ClientOAuth
}

// GetClientConfig builds the [ClientConfig] from command-line args (without
// the program name) and the other configuration sources.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	callback := cfg.OAuth.CallbackAddress
	if callback == oauthDisabled {
		callback = ""
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			CipherKey: cfg.App.CipherKey,
			LogFile:   cfg.App.LogFile,
			LogLevel:  cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GraphQLPath:    cfg.Adapter.GraphQLPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		OAuth: ClientOAuth{CallbackAddress: callback},
	}

	return clientCfg, clientCfg.validate()
}
