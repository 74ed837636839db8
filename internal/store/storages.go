// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package store

import "github.com/covid19india/portal-api/internal/logger"

// Storages bundles every repository behind a single constructor so that the
// composition root wires one value instead of three.
type Storages struct {
	UserRepository     UserRepository
	StateRepository    StateRepository
	DistrictRepository DistrictRepository
}

// NewStorages constructs all repositories over the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		StateRepository:    NewStateRepository(db, logger),
		DistrictRepository: NewDistrictRepository(db, logger),
	}
}
