// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package models

// District represents a single district row together with its COVID-19
// counters. Districts are fully owned by the API: created, replaced and
// deleted through the /districts handlers.
type District struct {
	// DistrictID is the store-assigned primary identifier.
	DistrictID int64 `json:"districtId"`

	// DistrictName is the human-readable district name.
	DistrictName string `json:"districtName"`

	// StateID references the state the district belongs to. Referential
	// integrity is the database's responsibility, not validated here.
	StateID int64 `json:"stateId"`

	Cases  int64 `json:"cases"`
	Cured  int64 `json:"cured"`
	Active int64 `json:"active"`
	Deaths int64 `json:"deaths"`
}

// TableName returns the name of the database table
// associated with the District model.
func (d District) TableName() string {
	return "district"
}
