// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package handler

import (
	"github.com/covid19india/portal-api/internal/handler/http"
	"github.com/covid19india/portal-api/internal/logger"
	"github.com/covid19india/portal-api/internal/service"
)

// Handlers groups the transport-level handlers of the application.
// The portal exposes a single HTTP surface.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs the transport handlers over the service layer.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
