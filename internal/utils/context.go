// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package utils

import (
	"context"
	"errors"
)

// ContextKey is a dedicated type for request-context keys so they can never
// collide with keys set by other packages.
type ContextKey string

// UsernameCtxKey is the context key under which the authentication middleware
// stores the username of the authenticated caller.
const UsernameCtxKey ContextKey = "username"

// ErrNoUsernameInContext is returned by [GetUsernameFromContext] when the
// request context carries no authenticated username.
var ErrNoUsernameInContext = errors.New("no username in context")

// GetUsernameFromContext extracts the authenticated username placed in ctx by
// the authentication middleware.
func GetUsernameFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	if !ok || username == "" {
		return "", ErrNoUsernameInContext
	}

	return username, nil
}
