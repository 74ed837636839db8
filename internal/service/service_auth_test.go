// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/covid19india/portal-api/internal/config"
	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/store"
	"github.com/covid19india/portal-api/internal/utils"
	"github.com/covid19india/portal-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepository implements store.UserRepository for unit tests.
type mockUserRepository struct {
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "covid-portal",
		TokenDuration: time.Hour,
	}
}

func newAuthServiceWithUser(t *testing.T, username, password string) AuthService {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, name string) (models.User, error) {
			if name != username {
				return models.User{}, store.ErrNoUserWasFound
			}
			return models.User{UserID: 1, Username: username, PasswordHash: hash}, nil
		},
	}

	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func TestLogin_Success(t *testing.T) {
	auth := newAuthServiceWithUser(t, "rahul", "rahul@123")

	token, err := auth.Login(context.Background(), "rahul", "rahul@123")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "rahul", token.Username)
}

func TestLogin_UnknownUser(t *testing.T) {
	auth := newAuthServiceWithUser(t, "rahul", "rahul@123")

	_, err := auth.Login(context.Background(), "nobody", "rahul@123")
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := newAuthServiceWithUser(t, "rahul", "rahul@123")

	_, err := auth.Login(context.Background(), "rahul", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestLogin_StoreError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}
	auth := NewAuthService(repo, testAppConfig(), logger.Nop())

	_, err := auth.Login(context.Background(), "rahul", "rahul@123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidUser)
	assert.NotErrorIs(t, err, ErrInvalidPassword)
}

func TestParseToken_RoundTrip(t *testing.T) {
	auth := newAuthServiceWithUser(t, "rahul", "rahul@123")

	issued, err := auth.Login(context.Background(), "rahul", "rahul@123")
	require.NoError(t, err)

	parsed, err := auth.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "rahul", parsed.Username)
}

func TestParseToken_ForeignToken(t *testing.T) {
	auth := newAuthServiceWithUser(t, "rahul", "rahul@123")

	foreign, err := utils.GenerateJWTToken("covid-portal", "rahul", time.Hour, "some-other-key")
	require.NoError(t, err)

	_, err = auth.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestParseToken_Malformed(t *testing.T) {
	auth := newAuthServiceWithUser(t, "rahul", "rahul@123")

	_, err := auth.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
