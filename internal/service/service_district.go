// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import (
	"context"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/store"
	"github.com/covid19india/portal-api/models"
)

// districtService is the concrete implementation of DistrictService.
type districtService struct {
	districtRepository store.DistrictRepository

	logger *logger.Logger
}

// NewDistrictService constructs a DistrictService over the district repository.
func NewDistrictService(districtRepository store.DistrictRepository, logger *logger.Logger) DistrictService {
	return &districtService{
		districtRepository: districtRepository,
		logger:             logger,
	}
}

// CreateDistrict validates the request body and inserts a new district row.
//
// Every field is mandatory: a body with a missing field fails with
// ErrInvalidInput rather than defaulting counters to zero.
func (d *districtService) CreateDistrict(ctx context.Context, request models.DistrictRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if !request.Complete() {
		log.Debug().Any("request", request).Msg("district request with missing fields")
		return 0, ErrInvalidInput
	}

	return d.districtRepository.CreateDistrict(ctx, request.District())
}

// GetDistrict looks up a single district by id.
// The repository's ErrDistrictNotFound passes through unwrapped so that the
// handler can map it to 404.
func (d *districtService) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	if districtID <= 0 {
		return models.District{}, ErrInvalidInput
	}

	return d.districtRepository.GetDistrict(ctx, districtID)
}

// UpdateDistrict replaces all six mutable fields of an existing district.
// Updating an id that matches no row surfaces ErrDistrictNotFound.
func (d *districtService) UpdateDistrict(ctx context.Context, districtID int64, request models.DistrictRequest) error {
	log := logger.FromContext(ctx)

	if districtID <= 0 || !request.Complete() {
		log.Debug().Int64("districtId", districtID).Any("request", request).Msg("invalid district update request")
		return ErrInvalidInput
	}

	district := request.District()
	district.DistrictID = districtID

	return d.districtRepository.UpdateDistrict(ctx, district)
}

// DeleteDistrict removes a district by id. Deleting an absent id is a
// success: the operation is idempotent.
func (d *districtService) DeleteDistrict(ctx context.Context, districtID int64) error {
	if districtID <= 0 {
		return ErrInvalidInput
	}

	return d.districtRepository.DeleteDistrict(ctx, districtID)
}
