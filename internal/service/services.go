// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import (
	"github.com/covid19india/portal-api/internal/config"
	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/store"
)

// Services bundles every service behind a single constructor so that the
// composition root wires one value.
type Services struct {
	AuthService     AuthService
	StateService    StateService
	DistrictService DistrictService
}

// NewServices constructs all services over the given repositories.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		StateService:    NewStateService(storages.StateRepository, storages.DistrictRepository, logger),
		DistrictService: NewDistrictService(storages.DistrictRepository, logger),
	}
}
