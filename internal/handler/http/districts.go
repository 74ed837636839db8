// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/service"
	"github.com/covid19india/portal-api/internal/store"
	"github.com/covid19india/portal-api/internal/utils"
	"github.com/covid19india/portal-api/models"
)

// createDistrict handles POST /districts.
//
// The confirmation message deliberately omits the assigned id: callers that
// need it re-fetch, matching the portal's public contract.
func (h *Handler) createDistrict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DistrictRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
		return
	}

	districtID, err := h.services.DistrictService.CreateDistrict(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			log.Debug().Any("request", request).Msg("district body with missing fields")
			_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("error creating district")
			_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("districtId", districtID).Msg("district created")
	_, _ = utils.WriteText(w, msgDistrictAdded, http.StatusOK)
}

// getDistrict handles GET /districts/{districtId}.
// An unknown id answers a structured 404, never a crash.
func (h *Handler) getDistrict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	districtID, err := int64URLParam(r, "districtId")
	if err != nil {
		log.Debug().Str("districtId", r.URL.Path).Msg("non-numeric district id")
		_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
		return
	}

	district, err := h.services.DistrictService.GetDistrict(ctx, districtID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDistrictNotFound):
			_, _ = utils.WriteText(w, msgDistrictNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("districtId", districtID).Msg("error getting district")
			_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, district, http.StatusOK)
}

// updateDistrict handles PUT /districts/{districtId}: a full replace of all
// six mutable fields. The store accepts a zero-row update silently, so a
// miss is detected downstream and surfaces here as 404.
func (h *Handler) updateDistrict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	districtID, err := int64URLParam(r, "districtId")
	if err != nil {
		log.Debug().Str("districtId", r.URL.Path).Msg("non-numeric district id")
		_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
		return
	}

	var request models.DistrictRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.DistrictService.UpdateDistrict(ctx, districtID, request); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			log.Debug().Any("request", request).Msg("district body with missing fields")
			_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDistrictNotFound):
			_, _ = utils.WriteText(w, msgDistrictNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("districtId", districtID).Msg("error updating district")
			_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteText(w, msgDistrictUpdated, http.StatusOK)
}

// deleteDistrict handles DELETE /districts/{districtId}.
// Deleting an id that matches no row still confirms removal: the operation
// is idempotent by contract.
func (h *Handler) deleteDistrict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	districtID, err := int64URLParam(r, "districtId")
	if err != nil {
		log.Debug().Str("districtId", r.URL.Path).Msg("non-numeric district id")
		_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.DistrictService.DeleteDistrict(ctx, districtID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			_, _ = utils.WriteText(w, service.ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("districtId", districtID).Msg("error deleting district")
			_, _ = utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteText(w, msgDistrictRemoved, http.StatusOK)
}
