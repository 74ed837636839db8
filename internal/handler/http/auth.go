// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/service"
	"github.com/covid19india/portal-api/internal/utils"
	"github.com/covid19india/portal-api/models"
)

// login handles POST /login.
//
// A matching username/password pair answers 200 with {"jwtToken": "..."}.
// An unknown username answers 400 "Invalid user"; a wrong password answers
// 400 "Invalid password". No other account information ever leaves this
// endpoint.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteText(w, msgInvalidUser, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUser):
			log.Debug().Str("username", request.Username).Msg("login failed: unknown user")
			_, _ = utils.WriteText(w, msgInvalidUser, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidPassword):
			log.Debug().Str("username", request.Username).Msg("login failed: wrong password")
			_, _ = utils.WriteText(w, msgInvalidPassword, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{JWTToken: token.SignedString}, http.StatusOK)
}
