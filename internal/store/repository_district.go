// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/models"
)

// districtRepository is the PostgreSQL-backed implementation of
// [DistrictRepository]. District rows are fully owned by the API.
type districtRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDistrictRepository constructs a [DistrictRepository] backed by the
// provided database connection and logger.
func NewDistrictRepository(db *DB, logger *logger.Logger) DistrictRepository {
	logger.Debug().Msg("creating district repository")
	return &districtRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDistrict inserts a new district row and returns the store-assigned id.
func (r *districtRepository) CreateDistrict(ctx context.Context, district models.District) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateDistrictQuery(district)
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.CreateDistrict").Msg("error: building insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var districtID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&districtID); err != nil {
		log.Err(err).
			Str("func", "*districtRepository.CreateDistrict").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Str("pgcode", postgresError(err)).
			Msg("error: inserting district")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return districtID, nil
}

// GetDistrict retrieves a single district by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrDistrictNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *districtRepository) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	log := logger.FromContext(ctx)

	var district models.District
	row := r.db.QueryRowContext(ctx, getDistrict, districtID)

	err := row.Scan(
		&district.DistrictID,
		&district.DistrictName,
		&district.StateID,
		&district.Cases,
		&district.Cured,
		&district.Active,
		&district.Deaths,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.District{}, ErrDistrictNotFound
		}

		log.Err(err).
			Str("func", "*districtRepository.GetDistrict").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Str("pgcode", postgresError(err)).
			Msg("error: scanning district row")
		return models.District{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return district, nil
}

// UpdateDistrict replaces all six mutable fields of the row matching
// district.DistrictID.
//
// The database accepts a zero-row UPDATE silently, so the affected-row count
// is checked explicitly: zero rows → [ErrDistrictNotFound].
func (r *districtRepository) UpdateDistrict(ctx context.Context, district models.District) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDistrictQuery(district)
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.UpdateDistrict").Msg("error: building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*districtRepository.UpdateDistrict").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Str("pgcode", postgresError(err)).
			Msg("error: updating district")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.UpdateDistrict").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDistrictNotFound
	}

	return nil
}

// DeleteDistrict removes the row with the given id. A delete that matches no
// row still reports success.
func (r *districtRepository) DeleteDistrict(ctx context.Context, districtID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteDistrict, districtID); err != nil {
		log.Err(err).
			Str("func", "*districtRepository.DeleteDistrict").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Str("pgcode", postgresError(err)).
			Msg("error: deleting district")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// StateStats sums the four counters across every district of the given state.
// The COALESCE in the query keeps the totals at zero for a state without
// districts, so the scan never sees NULL.
func (r *districtRepository) StateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStateStatsQuery(stateID)
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.StateStats").Msg("error: building stats query")
		return models.StateStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.StateStats
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&stats.TotalCases, &stats.TotalCured, &stats.TotalActive, &stats.TotalDeaths); err != nil {
		log.Err(err).
			Str("func", "*districtRepository.StateStats").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Str("pgcode", postgresError(err)).
			Msg("error: scanning stats row")
		return models.StateStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}
