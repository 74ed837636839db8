// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	// Malformed non-empty headers surface the error returned by
	// [utils.ParseBearerToken] instead.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
)

// Response bodies fixed by the portal's public contract. Clients match on
// these strings, so they are constants rather than free-form messages.
const (
	msgInvalidJWTToken = "Invalid JWT Token"
	msgInvalidUser     = "Invalid user"
	msgInvalidPassword = "Invalid password"

	msgStateNotFound    = "State Not Found"
	msgDistrictNotFound = "District Not Found"

	msgDistrictAdded   = "District Successfully Added"
	msgDistrictRemoved = "District Removed"
	msgDistrictUpdated = "District Details Updated"
)
