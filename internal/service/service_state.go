// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import (
	"context"
	"fmt"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/store"
	"github.com/covid19india/portal-api/models"
)

// stateService is the concrete implementation of StateService.
// It reads states through the state repository and computes per-state
// aggregates through the district repository.
type stateService struct {
	stateRepository    store.StateRepository
	districtRepository store.DistrictRepository

	logger *logger.Logger
}

// NewStateService constructs a StateService over the two repositories it
// reads from.
func NewStateService(stateRepository store.StateRepository, districtRepository store.DistrictRepository, logger *logger.Logger) StateService {
	return &stateService{
		stateRepository:    stateRepository,
		districtRepository: districtRepository,
		logger:             logger,
	}
}

// ListStates returns every state ordered by id ascending.
func (s *stateService) ListStates(ctx context.Context) ([]models.State, error) {
	states, err := s.stateRepository.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing states failed: %w", err)
	}

	return states, nil
}

// GetState looks up a single state by id.
// The repository's ErrStateNotFound passes through unwrapped so that the
// handler can map it to 404.
func (s *stateService) GetState(ctx context.Context, stateID int64) (models.State, error) {
	if stateID <= 0 {
		return models.State{}, ErrInvalidInput
	}

	return s.stateRepository.GetState(ctx, stateID)
}

// StateStats aggregates the COVID-19 counters across all districts of the
// given state. A state without districts yields all-zero totals.
func (s *stateService) StateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	if stateID <= 0 {
		return models.StateStats{}, ErrInvalidInput
	}

	stats, err := s.districtRepository.StateStats(ctx, stateID)
	if err != nil {
		return models.StateStats{}, fmt.Errorf("aggregating state stats failed: %w", err)
	}

	return stats, nil
}
