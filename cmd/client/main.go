// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pet-storefront/internal/adapter"
	"github.com/MKhiriev/go-pet-storefront/internal/client"
	"github.com/MKhiriev/go-pet-storefront/internal/config"
	"github.com/MKhiriev/go-pet-storefront/internal/crypto"
	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/oauth"
	"github.com/MKhiriev/go-pet-storefront/internal/service"
	"github.com/MKhiriev/go-pet-storefront/internal/session"
	"github.com/MKhiriev/go-pet-storefront/internal/store"
	"github.com/MKhiriev/go-pet-storefront/internal/tui"
	"github.com/MKhiriev/go-pet-storefront/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-pet-storefront", cfg.App.LogFile, cfg.App.LogLevel)
	ctx := context.Background()

	gateway, err := adapter.NewGraphQLAuthGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create graphql adapter")
	}

	cipher, err := crypto.NewPassphraseCipher(cfg.App.CipherKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential cipher")
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessionStore := session.NewStore()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewClientServices(gateway, cipher, sessionStore, store.NewRepositories(db, log), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	var (
		tokens     client.TokenSource
		googleHint string
	)
	receiver, err := oauth.NewReceiver(cfg.OAuth, log)
	switch {
	case err == nil:
		tokens = receiver
		googleHint = "http://" + receiver.Addr() + oauth.CallbackPath
	case errors.Is(err, oauth.ErrReceiverDisabled):
		log.Info().Msg("google callback listener is disabled")
	default:
		log.Fatal().Err(err).Msg("create google callback listener")
	}

	ui, err := tui.New(services, sessionStore, googleHint, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, tokens, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
