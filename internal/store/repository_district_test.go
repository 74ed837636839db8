// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/covid19india/portal-api/models"
)

func newTestDistrictRepo(t *testing.T) (*districtRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &districtRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

var testDistrict = models.District{
	DistrictID:   5,
	DistrictName: "Ernakulam",
	StateID:      12,
	Cases:        2342,
	Cured:        2000,
	Active:       300,
	Deaths:       42,
}

func TestCreateDistrict_Success(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"district_id"}).AddRow(5)

	mock.ExpectQuery("INSERT INTO district").
		WithArgs(testDistrict.DistrictName, testDistrict.StateID, testDistrict.Cases,
			testDistrict.Cured, testDistrict.Active, testDistrict.Deaths).
		WillReturnRows(rows)

	id, err := repo.CreateDistrict(context.Background(), testDistrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Errorf("expected district id 5, got %d", id)
	}
}

func TestCreateDistrict_ExecError(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO district").
		WillReturnError(errors.New("constraint violation"))

	_, err := repo.CreateDistrict(context.Background(), testDistrict)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetDistrict_Success(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"district_id", "district_name", "state_id", "cases", "cured", "active", "deaths"}).
		AddRow(5, "Ernakulam", 12, 2342, 2000, 300, 42)

	mock.ExpectQuery("SELECT district_id, district_name, state_id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	district, err := repo.GetDistrict(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if district != testDistrict {
		t.Errorf("district = %+v, want %+v", district, testDistrict)
	}
}

func TestGetDistrict_NotFound(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT district_id, district_name, state_id").
		WithArgs(int64(9999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDistrict(context.Background(), 9999)
	if !errors.Is(err, ErrDistrictNotFound) {
		t.Fatalf("expected ErrDistrictNotFound, got %v", err)
	}
}

func TestUpdateDistrict_Success(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE district").
		WithArgs(testDistrict.DistrictName, testDistrict.StateID, testDistrict.Cases,
			testDistrict.Cured, testDistrict.Active, testDistrict.Deaths, testDistrict.DistrictID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateDistrict(context.Background(), testDistrict); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateDistrict_ZeroRowsAffected(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	// the store accepts a zero-row update silently; the repository must not
	mock.ExpectExec("UPDATE district").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDistrict(context.Background(), testDistrict)
	if !errors.Is(err, ErrDistrictNotFound) {
		t.Fatalf("expected ErrDistrictNotFound, got %v", err)
	}
}

func TestUpdateDistrict_ExecError(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE district").
		WillReturnError(errors.New("db is down"))

	if err := repo.UpdateDistrict(context.Background(), testDistrict); !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestDeleteDistrict_Success(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM district").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteDistrict(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteDistrict_NoMatchingRow_StillSuccess(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM district").
		WithArgs(int64(9999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteDistrict(context.Background(), 9999); err != nil {
		t.Fatalf("delete must be idempotent, got: %v", err)
	}
}

func TestStateStats_Success(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"total_cases", "total_cured", "total_active", "total_deaths"}).
		AddRow(724355, 615324, 100000, 9031)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(12)).
		WillReturnRows(rows)

	stats, err := repo.StateStats(context.Background(), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.StateStats{TotalCases: 724355, TotalCured: 615324, TotalActive: 100000, TotalDeaths: 9031}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestStateStats_NoDistricts_AllZero(t *testing.T) {
	repo, mock, db := newTestDistrictRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"total_cases", "total_cured", "total_active", "total_deaths"}).
		AddRow(0, 0, 0, 0)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(99)).
		WillReturnRows(rows)

	stats, err := repo.StateStats(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats != (models.StateStats{}) {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}
