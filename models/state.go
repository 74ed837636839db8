// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package models

// State represents a single Indian state tracked by the portal.
// States are read-only from the API's perspective: rows are seeded together
// with the schema and there are no create/update/delete endpoints for them.
type State struct {
	// StateID is the primary identifier of the state.
	StateID int64 `json:"stateId"`

	// StateName is the human-readable state name.
	StateName string `json:"stateName"`

	// Population is the total population of the state.
	Population int64 `json:"population"`
}

// TableName returns the name of the database table
// associated with the State model.
func (s State) TableName() string {
	return "state"
}

// StateStats holds the aggregated COVID-19 counters across every district of
// a single state. Sums over an empty district set are zero, never null.
type StateStats struct {
	TotalCases  int64 `json:"totalCases"`
	TotalCured  int64 `json:"totalCured"`
	TotalActive int64 `json:"totalActive"`
	TotalDeaths int64 `json:"totalDeaths"`
}
