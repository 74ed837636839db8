// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import (
	"context"

	"github.com/covid19india/portal-api/models"
)

// AuthService verifies credentials and manages the JWT token lifecycle.
type AuthService interface {
	// Login authenticates a username/password pair against the seeded user
	// table and issues a signed token on success.
	//
	// Returns [ErrInvalidUser] when no account matches and
	// [ErrInvalidPassword] when the password does not match the stored hash.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// ParseToken validates a raw bearer token string and yields the
	// embedded username. Any verification failure is normalised to
	// [ErrTokenIsInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StateService serves read operations over the state table.
type StateService interface {
	ListStates(ctx context.Context) ([]models.State, error)
	GetState(ctx context.Context, stateID int64) (models.State, error)
	StateStats(ctx context.Context, stateID int64) (models.StateStats, error)
}

// DistrictService owns the district lifecycle exposed by the /districts routes.
type DistrictService interface {
	// CreateDistrict validates that every mandatory field is present and
	// inserts the row, returning the store-assigned id.
	CreateDistrict(ctx context.Context, request models.DistrictRequest) (int64, error)

	GetDistrict(ctx context.Context, districtID int64) (models.District, error)

	// UpdateDistrict performs a full replace of all six mutable fields.
	UpdateDistrict(ctx context.Context, districtID int64, request models.DistrictRequest) error

	DeleteDistrict(ctx context.Context, districtID int64) error
}
