// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/covid19india/portal-api/models"
)

// Static queries. Everything is parameterised; values never reach the SQL
// text through interpolation.
const (
	findUserByUsername = `SELECT user_id, username, password
    FROM "user"
    WHERE username = $1;`

	listStates = `SELECT state_id, state_name, population
    FROM state
    ORDER BY state_id;`

	getState = `SELECT state_id, state_name, population
    FROM state
    WHERE state_id = $1;`

	getDistrict = `SELECT district_id, district_name, state_id, cases, cured, active, deaths
    FROM district
    WHERE district_id = $1;`

	deleteDistrict = `DELETE FROM district
    WHERE district_id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateDistrictQuery builds the district INSERT returning the
// store-assigned id.
func buildCreateDistrictQuery(district models.District) (string, []any, error) {
	return psql.Insert("district").
		Columns("district_name", "state_id", "cases", "cured", "active", "deaths").
		Values(district.DistrictName, district.StateID, district.Cases, district.Cured, district.Active, district.Deaths).
		Suffix("RETURNING district_id").
		ToSql()
}

// buildUpdateDistrictQuery builds the full-replace UPDATE of all six mutable
// district fields.
func buildUpdateDistrictQuery(district models.District) (string, []any, error) {
	return psql.Update("district").
		Set("district_name", district.DistrictName).
		Set("state_id", district.StateID).
		Set("cases", district.Cases).
		Set("cured", district.Cured).
		Set("active", district.Active).
		Set("deaths", district.Deaths).
		Where(sq.Eq{"district_id": district.DistrictID}).
		ToSql()
}

// buildStateStatsQuery builds the aggregate over all districts of one state.
// SUM over an empty set is NULL in SQL, hence the COALESCE to keep the totals
// well-defined zeros.
func buildStateStatsQuery(stateID int64) (string, []any, error) {
	return psql.Select(
		"COALESCE(SUM(cases), 0) AS total_cases",
		"COALESCE(SUM(cured), 0) AS total_cured",
		"COALESCE(SUM(active), 0) AS total_active",
		"COALESCE(SUM(deaths), 0) AS total_deaths",
	).
		From("district").
		Where(sq.Eq{"state_id": stateID}).
		ToSql()
}
