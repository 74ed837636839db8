// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package service

import "errors"

// Sentinel errors of the service layer. Handlers match against them with
// [errors.Is] to pick the HTTP status and response body.
var (
	// ErrInvalidUser is returned by Login when no account matches the given
	// username. The message deliberately reveals nothing else about the
	// account set.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidPassword is returned by Login when the account exists but
	// the password does not match its stored hash.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrTokenIsInvalid is returned by ParseToken for any verification
	// failure: bad signature, malformed payload, expired or foreign token.
	ErrTokenIsInvalid = errors.New("invalid JWT token")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidInput is returned when a request body is missing mandatory
	// fields or an identifier is not a positive integer.
	ErrInvalidInput = errors.New("invalid input")
)
