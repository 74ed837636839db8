// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

// Package http implements the HTTP transport layer of the portal API.
// It provides middleware, route handlers, and request/response utilities
// for the REST surface. Authentication, logging and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// via [utils.ParseBearerToken], validates it through
// [service.AuthService.ParseToken], and on success stores the authenticated
// username in the request context under [utils.UsernameCtxKey] before
// delegating to the next handler.
//
// Every rejection (absent header, unparsable header, bad signature, expired
// or malformed token) answers 401 with the fixed body "Invalid JWT Token".
// The portal's contract does not distinguish the failure modes to the caller;
// the request-scoped log entry carries the specific cause.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			_, _ = utils.WriteText(w, msgInvalidJWTToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			_, _ = utils.WriteText(w, msgInvalidJWTToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			_, _ = utils.WriteText(w, msgInvalidJWTToken, http.StatusUnauthorized)
			return
		}

		// Store the authenticated username in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
