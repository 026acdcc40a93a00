package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/core/port"
	"github.com/arklim/access-pass-service/internal/repository"
)

var passColumns = []string{"id", "level", "created_at", "updated_at"}

// PassRepository implements port.PassRepository using PostgreSQL.
type PassRepository struct {
	db      pgDatabase
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewPassRepository constructs a repository backed by any executor that satisfies pgDatabase.
func NewPassRepository(db pgDatabase) *PassRepository {
	return &PassRepository{
		db:      db,
		exec:    db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository instance operating within the supplied transaction.
func (r *PassRepository) WithTx(tx pgx.Tx) *PassRepository {
	if tx == nil {
		return r
	}
	return &PassRepository{
		db:      r.db,
		exec:    tx,
		builder: r.builder,
	}
}

func insertPass(ctx context.Context, exec pgExecutor, builder squirrel.StatementBuilderType, pass domain.Pass) error {
	stmt, args, err := builder.Insert("passes").
		Columns(passColumns...).
		Values(pass.ID, pass.Level, pass.CreatedAt, pass.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert pass sql: %w", err)
	}

	if _, err := exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert pass: %w", err)
	}

	return nil
}

// CreateForUser inserts the pass and repoints the target user's reference in
// one transaction. The user's previous pass, if any, is left in place.
func (r *PassRepository) CreateForUser(ctx context.Context, pass domain.Pass, userID string) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertPass(ctx, tx, r.builder, pass); err != nil {
			return err
		}

		stmt, args, err := r.builder.
			Update("users").
			Set("pass_id", pass.ID).
			Where(squirrel.Eq{"id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build assign pass sql: %w", err)
		}

		tag, err := tx.Exec(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("assign pass: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}

		return nil
	})
}

// GetByID retrieves a pass by identifier.
func (r *PassRepository) GetByID(ctx context.Context, id string) (*domain.Pass, error) {
	stmt, args, err := r.builder.
		Select(passColumns...).
		From("passes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select pass sql: %w", err)
	}

	var pass domain.Pass
	row := r.exec.QueryRow(ctx, stmt, args...)
	if err := row.Scan(&pass.ID, &pass.Level, &pass.CreatedAt, &pass.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan pass: %w", err)
	}

	return &pass, nil
}

// List returns all passes.
func (r *PassRepository) List(ctx context.Context) ([]domain.Pass, error) {
	stmt, args, err := r.builder.
		Select(passColumns...).
		From("passes").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list passes sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("list passes: %w", err)
	}
	defer rows.Close()

	var passes []domain.Pass
	for rows.Next() {
		var pass domain.Pass
		if err := rows.Scan(&pass.ID, &pass.Level, &pass.CreatedAt, &pass.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pass: %w", err)
		}
		passes = append(passes, pass)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passes: %w", err)
	}

	return passes, nil
}

// UpdateLevel sets a new clearance level and update timestamp, returning the
// resulting row.
func (r *PassRepository) UpdateLevel(ctx context.Context, id string, level int, updatedAt time.Time) (*domain.Pass, error) {
	stmt, args, err := r.builder.
		Update("passes").
		Set("level", level).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, level, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update pass sql: %w", err)
	}

	var pass domain.Pass
	row := r.exec.QueryRow(ctx, stmt, args...)
	if err := row.Scan(&pass.ID, &pass.Level, &pass.CreatedAt, &pass.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan updated pass: %w", err)
	}

	return &pass, nil
}

// Delete clears the reference on every user holding the pass and removes the
// pass, as one transaction.
func (r *PassRepository) Delete(ctx context.Context, id string) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		unlink, unlinkArgs, err := r.builder.
			Update("users").
			Set("pass_id", nil).
			Where(squirrel.Eq{"pass_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build unlink pass sql: %w", err)
		}

		if _, err := tx.Exec(ctx, unlink, unlinkArgs...); err != nil {
			return fmt.Errorf("unlink pass: %w", err)
		}

		del, delArgs, err := r.builder.
			Delete("passes").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete pass sql: %w", err)
		}

		tag, err := tx.Exec(ctx, del, delArgs...)
		if err != nil {
			return fmt.Errorf("delete pass: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}

		return nil
	})
}

var _ port.PassRepository = (*PassRepository)(nil)
