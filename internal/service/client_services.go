// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pet-storefront/internal/adapter"
	"github.com/MKhiriev/go-pet-storefront/internal/crypto"
	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/store"
	"github.com/MKhiriev/go-pet-storefront/models"
)

// ClientServices groups the services used by the terminal UI.
type ClientServices struct {
	AuthService    ClientAuthService
	ProfileService ClientProfileService
	AppInfoService AppInfoService
}

// NewClientServices wires every client service.
func NewClientServices(
	gateway adapter.AuthGateway,
	cipher crypto.CredentialCipher,
	session SessionStore,
	repos *store.Repositories,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		AuthService:    NewClientAuthService(gateway, cipher, session, logger),
		ProfileService: NewClientProfileService(repos.Pets, repos.Transactions, logger),
		AppInfoService: appInfo,
	}, nil
}
