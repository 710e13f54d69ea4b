// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService constructs an [AppInfoService]. Returns
// [ErrVersionIsNotSpecified] when info carries no version.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
