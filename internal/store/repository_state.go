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

// stateRepository is the PostgreSQL-backed implementation of [StateRepository].
// The state table is read-only from the API's perspective.
type stateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStateRepository constructs a [StateRepository] backed by the provided
// database connection and logger.
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		db:     db,
		logger: logger,
	}
}

// ListStates returns every state row ordered by state_id ascending.
// An empty table yields an empty (non-nil) slice.
func (r *stateRepository) ListStates(ctx context.Context) ([]models.State, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listStates)
	if err != nil {
		log.Err(err).
			Str("func", "*stateRepository.ListStates").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Str("pgcode", postgresError(err)).
			Msg("error: querying states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.State, 0)
	for rows.Next() {
		var state models.State
		if err := rows.Scan(&state.StateID, &state.StateName, &state.Population); err != nil {
			log.Err(err).Str("func", "*stateRepository.ListStates").Msg("error: scanning state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		states = append(states, state)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*stateRepository.ListStates").Msg("error: iterating state rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

// GetState retrieves a single state by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrStateNotFound]; missing rows are an expected
//     outcome and must never surface as a scan panic or 500.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *stateRepository) GetState(ctx context.Context, stateID int64) (models.State, error) {
	log := logger.FromContext(ctx)

	var state models.State
	row := r.db.QueryRowContext(ctx, getState, stateID)

	if err := row.Scan(&state.StateID, &state.StateName, &state.Population); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.State{}, ErrStateNotFound
		}

		log.Err(err).
			Str("func", "*stateRepository.GetState").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Str("pgcode", postgresError(err)).
			Msg("error: scanning state row")
		return models.State{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return state, nil
}
