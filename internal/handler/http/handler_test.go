// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package http

import (
	"context"
	"testing"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/service"
	"github.com/covid19india/portal-api/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn      func(ctx context.Context, username, password string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.Token, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockStateService implements service.StateService for unit tests.
type mockStateService struct {
	listStatesFn func(ctx context.Context) ([]models.State, error)
	getStateFn   func(ctx context.Context, stateID int64) (models.State, error)
	stateStatsFn func(ctx context.Context, stateID int64) (models.StateStats, error)
}

func (m *mockStateService) ListStates(ctx context.Context) ([]models.State, error) {
	return m.listStatesFn(ctx)
}

func (m *mockStateService) GetState(ctx context.Context, stateID int64) (models.State, error) {
	return m.getStateFn(ctx, stateID)
}

func (m *mockStateService) StateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	return m.stateStatsFn(ctx, stateID)
}

// mockDistrictService implements service.DistrictService for unit tests.
type mockDistrictService struct {
	createDistrictFn func(ctx context.Context, request models.DistrictRequest) (int64, error)
	getDistrictFn    func(ctx context.Context, districtID int64) (models.District, error)
	updateDistrictFn func(ctx context.Context, districtID int64, request models.DistrictRequest) error
	deleteDistrictFn func(ctx context.Context, districtID int64) error
}

func (m *mockDistrictService) CreateDistrict(ctx context.Context, request models.DistrictRequest) (int64, error) {
	return m.createDistrictFn(ctx, request)
}

func (m *mockDistrictService) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	return m.getDistrictFn(ctx, districtID)
}

func (m *mockDistrictService) UpdateDistrict(ctx context.Context, districtID int64, request models.DistrictRequest) error {
	return m.updateDistrictFn(ctx, districtID, request)
}

func (m *mockDistrictService) DeleteDistrict(ctx context.Context, districtID int64) error {
	return m.deleteDistrictFn(ctx, districtID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocks; nil mocks are left
// nil so an unexpected call panics loudly.
func newTestHandler(t *testing.T, auth service.AuthService, states service.StateService, districts service.DistrictService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		StateService:    states,
		DistrictService: districts,
	}
	return NewHandler(svcs, logger.Nop())
}

// authAccepting returns a mock auth service whose ParseToken accepts any
// token and yields the given username.
func authAccepting(username string) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Username: username}, nil
		},
	}
}

// ptr returns a pointer to v, for building DistrictRequest literals.
func ptr[T any](v T) *T { return &v }

func completeDistrictBody() string {
	return `{"districtName":"Ernakulam","stateId":12,"cases":100,"cured":90,"active":8,"deaths":2}`
}
