// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import (
	"context"
	"testing"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/store"
	"github.com/covid19india/portal-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDistrictRepository implements store.DistrictRepository for unit tests.
// Each method field can be overridden per test case.
type mockDistrictRepository struct {
	createDistrictFn func(ctx context.Context, district models.District) (int64, error)
	getDistrictFn    func(ctx context.Context, districtID int64) (models.District, error)
	updateDistrictFn func(ctx context.Context, district models.District) error
	deleteDistrictFn func(ctx context.Context, districtID int64) error
	stateStatsFn     func(ctx context.Context, stateID int64) (models.StateStats, error)
}

func (m *mockDistrictRepository) CreateDistrict(ctx context.Context, district models.District) (int64, error) {
	return m.createDistrictFn(ctx, district)
}

func (m *mockDistrictRepository) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	return m.getDistrictFn(ctx, districtID)
}

func (m *mockDistrictRepository) UpdateDistrict(ctx context.Context, district models.District) error {
	return m.updateDistrictFn(ctx, district)
}

func (m *mockDistrictRepository) DeleteDistrict(ctx context.Context, districtID int64) error {
	return m.deleteDistrictFn(ctx, districtID)
}

func (m *mockDistrictRepository) StateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	return m.stateStatsFn(ctx, stateID)
}

func ptr[T any](v T) *T { return &v }

func completeRequest() models.DistrictRequest {
	return models.DistrictRequest{
		DistrictName: ptr("Ernakulam"),
		StateID:      ptr(int64(12)),
		Cases:        ptr(int64(100)),
		Cured:        ptr(int64(90)),
		Active:       ptr(int64(8)),
		Deaths:       ptr(int64(2)),
	}
}

func TestCreateDistrict_Success(t *testing.T) {
	var inserted models.District
	repo := &mockDistrictRepository{
		createDistrictFn: func(_ context.Context, district models.District) (int64, error) {
			inserted = district
			return 5, nil
		},
	}
	svc := NewDistrictService(repo, logger.Nop())

	id, err := svc.CreateDistrict(context.Background(), completeRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, "Ernakulam", inserted.DistrictName)
	assert.Equal(t, int64(100), inserted.Cases)
}

func TestCreateDistrict_MissingField(t *testing.T) {
	svc := NewDistrictService(&mockDistrictRepository{}, logger.Nop())

	// no default-zero policy: an absent counter is invalid input
	request := completeRequest()
	request.Deaths = nil

	_, err := svc.CreateDistrict(context.Background(), request)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDistrict_InvalidID(t *testing.T) {
	svc := NewDistrictService(&mockDistrictRepository{}, logger.Nop())

	_, err := svc.GetDistrict(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDistrict_NotFoundPassesThrough(t *testing.T) {
	repo := &mockDistrictRepository{
		getDistrictFn: func(context.Context, int64) (models.District, error) {
			return models.District{}, store.ErrDistrictNotFound
		},
	}
	svc := NewDistrictService(repo, logger.Nop())

	_, err := svc.GetDistrict(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrDistrictNotFound)
}

func TestUpdateDistrict_SetsIDFromPath(t *testing.T) {
	var updated models.District
	repo := &mockDistrictRepository{
		updateDistrictFn: func(_ context.Context, district models.District) error {
			updated = district
			return nil
		},
	}
	svc := NewDistrictService(repo, logger.Nop())

	require.NoError(t, svc.UpdateDistrict(context.Background(), 5, completeRequest()))
	assert.Equal(t, int64(5), updated.DistrictID)
	assert.Equal(t, "Ernakulam", updated.DistrictName)
}

func TestUpdateDistrict_MissingField(t *testing.T) {
	svc := NewDistrictService(&mockDistrictRepository{}, logger.Nop())

	request := completeRequest()
	request.StateID = nil

	err := svc.UpdateDistrict(context.Background(), 5, request)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateDistrict_NotFoundPassesThrough(t *testing.T) {
	repo := &mockDistrictRepository{
		updateDistrictFn: func(context.Context, models.District) error {
			return store.ErrDistrictNotFound
		},
	}
	svc := NewDistrictService(repo, logger.Nop())

	err := svc.UpdateDistrict(context.Background(), 9999, completeRequest())
	assert.ErrorIs(t, err, store.ErrDistrictNotFound)
}

func TestDeleteDistrict_Success(t *testing.T) {
	called := false
	repo := &mockDistrictRepository{
		deleteDistrictFn: func(_ context.Context, districtID int64) error {
			called = true
			assert.Equal(t, int64(5), districtID)
			return nil
		},
	}
	svc := NewDistrictService(repo, logger.Nop())

	require.NoError(t, svc.DeleteDistrict(context.Background(), 5))
	assert.True(t, called)
}

func TestDeleteDistrict_InvalidID(t *testing.T) {
	svc := NewDistrictService(&mockDistrictRepository{}, logger.Nop())

	err := svc.DeleteDistrict(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
