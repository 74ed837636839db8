// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/covid19india/portal-api/internal/config"
	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/store"
	"github.com/covid19india/portal-api/internal/utils"
	"github.com/covid19india/portal-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the seeded user table using bcrypt and
// issues HMAC-SHA256 signed JWT tokens carrying the username as subject.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Sourced from configuration, never compiled in.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without an expiry claim.
	tokenDuration time.Duration

	// debugTokenLog enables debug-level logging of issued token strings.
	// Off by default: tokens are credentials.
	debugTokenLog bool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		debugTokenLog:  cfg.DebugTokenLog,
		logger:         logger,
	}
}

// Login authenticates a username/password pair.
//
// The lookup failure and the password mismatch surface as two distinct
// sentinel errors because the portal's login endpoint historically
// distinguishes "Invalid user" from "Invalid password" in its responses.
// Neither path reveals anything beyond those two messages.
//
// Returns the issued token on success or:
//   - ErrInvalidUser if no account matches the username.
//   - ErrInvalidPassword if the bcrypt comparison fails.
//   - A wrapped storage or signing error otherwise.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown user")
			return models.Token{}, ErrInvalidUser
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := utils.CheckPassword(foundUser.PasswordHash, password); err != nil {
		log.Debug().Str("username", username).Msg("wrong password")
		return models.Token{}, ErrInvalidPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if a.debugTokenLog {
		log.Debug().Str("username", username).Str("jwtToken", token.SignedString).Msg("issued token")
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
