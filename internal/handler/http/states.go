// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package http

import (
	"errors"
	"net/http"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/service"
	"github.com/covid19india/portal-api/internal/store"
	"github.com/covid19india/portal-api/internal/utils"
)

// listStates handles GET /states/.
// It returns every state ordered by stateId ascending; an empty store yields
// an empty JSON array, never an error.
func (h *Handler) listStates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	states, err := h.services.StateService.ListStates(ctx)
	if err != nil {
		log.Err(err).Msg("error listing states")
		_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, states, http.StatusOK)
}

// getState handles GET /states/{stateId}.
// An unknown id answers a structured 404, never a crash.
func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stateID, err := int64URLParam(r, "stateId")
	if err != nil {
		log.Debug().Str("stateId", r.URL.Path).Msg("non-numeric state id")
		_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.services.StateService.GetState(ctx, stateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrStateNotFound):
			_, _ = utils.WriteText(w, msgStateNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("stateId", stateID).Msg("error getting state")
			_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, state, http.StatusOK)
}

// stateStats handles GET /states/{stateId}/stats.
// A state with zero districts answers all-zero totals.
func (h *Handler) stateStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stateID, err := int64URLParam(r, "stateId")
	if err != nil {
		log.Debug().Str("stateId", r.URL.Path).Msg("non-numeric state id")
		_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
		return
	}

	stats, err := h.services.StateService.StateStats(ctx, stateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("stateId", stateID).Msg("error aggregating state stats")
			_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, stats, http.StatusOK)
}
