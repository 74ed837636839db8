// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// int64URLParam parses the named chi URL parameter as a base-10 int64.
// A non-numeric value is the caller's InvalidInput case.
func int64URLParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
