package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/arklim/access-pass-service/internal/repository"
)

func TestPlaceRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPlaceRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "address", "phone_number", "required_pass_level", "required_age_level"}).
		AddRow("place-1", "Liteyny 4", "+78120000000", 3, 18)

	mock.ExpectQuery(`SELECT .+ FROM places WHERE id = \$1`).
		WithArgs("place-1").
		WillReturnRows(rows)

	place, err := repo.GetByID(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if place.RequiredPassLevel != 3 || place.RequiredAgeLevel != 18 {
		t.Fatalf("unexpected place: %+v", place)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceRepository_ListAccessible(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPlaceRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "address", "phone_number", "required_pass_level", "required_age_level"}).
		AddRow("open", "Main 1", "+7000", 1, 0).
		AddRow("exact", "Main 2", "+7001", 3, 30)

	mock.ExpectQuery(`SELECT .+ FROM places WHERE required_pass_level <= \$1 AND required_age_level <= \$2`).
		WithArgs(3, 30).
		WillReturnRows(rows)

	places, err := repo.ListAccessible(context.Background(), 3, 30)
	if err != nil {
		t.Fatalf("ListAccessible returned error: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("expected 2 places, got %d", len(places))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPlaceRepository(mock)

	mock.ExpectExec(`DELETE FROM places WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
