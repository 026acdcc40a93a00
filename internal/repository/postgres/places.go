package postgres

import (
	"context"
	"errors"
	"fmt"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/core/port"
	"github.com/arklim/access-pass-service/internal/repository"
)

var placeColumns = []string{
	"id",
	"address",
	"phone_number",
	"required_pass_level",
	"required_age_level",
}

// PlaceRepository implements port.PlaceRepository using PostgreSQL.
type PlaceRepository struct {
	db      pgDatabase
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewPlaceRepository constructs a repository backed by any executor that satisfies pgDatabase.
func NewPlaceRepository(db pgDatabase) *PlaceRepository {
	return &PlaceRepository{
		db:      db,
		exec:    db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository instance operating within the supplied transaction.
func (r *PlaceRepository) WithTx(tx pgx.Tx) *PlaceRepository {
	if tx == nil {
		return r
	}
	return &PlaceRepository{
		db:      r.db,
		exec:    tx,
		builder: r.builder,
	}
}

// Create inserts a new place row.
func (r *PlaceRepository) Create(ctx context.Context, place domain.Place) error {
	stmt, args, err := r.builder.Insert("places").
		Columns(placeColumns...).
		Values(
			place.ID,
			place.Address,
			place.PhoneNumber,
			place.RequiredPassLevel,
			place.RequiredAgeLevel,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert place sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert place: %w", err)
	}

	return nil
}

// GetByID retrieves a place by identifier.
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	stmt, args, err := r.builder.
		Select(placeColumns...).
		From("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select place sql: %w", err)
	}

	var place domain.Place
	row := r.exec.QueryRow(ctx, stmt, args...)
	if err := row.Scan(
		&place.ID,
		&place.Address,
		&place.PhoneNumber,
		&place.RequiredPassLevel,
		&place.RequiredAgeLevel,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan place: %w", err)
	}

	return &place, nil
}

// List returns all places.
func (r *PlaceRepository) List(ctx context.Context) ([]domain.Place, error) {
	stmt, args, err := r.builder.
		Select(placeColumns...).
		From("places").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list places sql: %w", err)
	}

	return r.queryPlaces(ctx, stmt, args)
}

// ListAccessible returns every place whose requirements are satisfied by the
// supplied pass level and age. Evaluated as one statement so the result
// reflects a single snapshot.
func (r *PlaceRepository) ListAccessible(ctx context.Context, passLevel, age int) ([]domain.Place, error) {
	stmt, args, err := r.builder.
		Select(placeColumns...).
		From("places").
		Where(squirrel.LtOrEq{"required_pass_level": passLevel}).
		Where(squirrel.LtOrEq{"required_age_level": age}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list accessible places sql: %w", err)
	}

	return r.queryPlaces(ctx, stmt, args)
}

// Update persists all fields of the supplied place.
func (r *PlaceRepository) Update(ctx context.Context, place domain.Place) error {
	stmt, args, err := r.builder.
		Update("places").
		Set("address", place.Address).
		Set("phone_number", place.PhoneNumber).
		Set("required_pass_level", place.RequiredPassLevel).
		Set("required_age_level", place.RequiredAgeLevel).
		Where(squirrel.Eq{"id": place.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update place sql: %w", err)
	}

	tag, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the place row. No cascade: users and passes are untouched.
func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	stmt, args, err := r.builder.
		Delete("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete place sql: %w", err)
	}

	tag, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *PlaceRepository) queryPlaces(ctx context.Context, stmt string, args []any) ([]domain.Place, error) {
	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query places: %w", err)
	}
	defer rows.Close()

	var places []domain.Place
	for rows.Next() {
		var place domain.Place
		if err := rows.Scan(
			&place.ID,
			&place.Address,
			&place.PhoneNumber,
			&place.RequiredPassLevel,
			&place.RequiredAgeLevel,
		); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}

	return places, nil
}

var _ port.PlaceRepository = (*PlaceRepository)(nil)
