// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package store

import (
	"context"

	"github.com/covid19india/portal-api/models"
)

// UserRepository provides read access to the seeded user accounts.
// Accounts are created out-of-band; the API only looks them up at login.
type UserRepository interface {
	// FindUserByUsername retrieves the user with the exact given username.
	// Returns [ErrNoUserWasFound] when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// StateRepository provides read access to the state table.
type StateRepository interface {
	// ListStates returns every state ordered by state_id ascending.
	// An empty table yields an empty slice, not an error.
	ListStates(ctx context.Context) ([]models.State, error)

	// GetState retrieves a single state by id.
	// Returns [ErrStateNotFound] when no row matches.
	GetState(ctx context.Context, stateID int64) (models.State, error)
}

// DistrictRepository owns the full lifecycle of district rows.
type DistrictRepository interface {
	// CreateDistrict inserts a new district and returns its store-assigned id.
	CreateDistrict(ctx context.Context, district models.District) (int64, error)

	// GetDistrict retrieves a single district by id.
	// Returns [ErrDistrictNotFound] when no row matches.
	GetDistrict(ctx context.Context, districtID int64) (models.District, error)

	// UpdateDistrict replaces all six mutable fields of the row matching
	// district.DistrictID. Returns [ErrDistrictNotFound] when zero rows
	// were affected.
	UpdateDistrict(ctx context.Context, district models.District) error

	// DeleteDistrict removes the row with the given id. Deleting an absent
	// row is not an error.
	DeleteDistrict(ctx context.Context, districtID int64) error

	// StateStats sums the four counters across every district of the given
	// state. Zero matching districts yield all-zero totals.
	StateStats(ctx context.Context, stateID int64) (models.StateStats, error)
}
