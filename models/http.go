// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package models

// LoginRequest is the JSON body expected by POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned by a successful POST /login.
type LoginResponse struct {
	JWTToken string `json:"jwtToken"`
}

// DistrictRequest is the JSON body accepted by POST /districts and
// PUT /districts/{districtId}.
//
// Numeric fields are pointers so that an absent field can be told apart from
// an explicit zero: every field is mandatory, there is no default-zero policy.
type DistrictRequest struct {
	DistrictName *string `json:"districtName"`
	StateID      *int64  `json:"stateId"`
	Cases        *int64  `json:"cases"`
	Cured        *int64  `json:"cured"`
	Active       *int64  `json:"active"`
	Deaths       *int64  `json:"deaths"`
}

// Complete reports whether every mandatory field was present in the body.
func (r DistrictRequest) Complete() bool {
	return r.DistrictName != nil &&
		r.StateID != nil &&
		r.Cases != nil &&
		r.Cured != nil &&
		r.Active != nil &&
		r.Deaths != nil
}

// District converts a complete request into a District model.
// Callers must check [DistrictRequest.Complete] first.
func (r DistrictRequest) District() District {
	return District{
		DistrictName: *r.DistrictName,
		StateID:      *r.StateID,
		Cases:        *r.Cases,
		Cured:        *r.Cured,
		Active:       *r.Active,
		Deaths:       *r.Deaths,
	}
}
