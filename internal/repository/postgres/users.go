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

var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"age",
	"phone_number",
	"address",
	"password_hash",
	"pass_id",
}

// UserRepository implements port.UserRepository using PostgreSQL.
type UserRepository struct {
	db      pgDatabase
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewUserRepository constructs a repository backed by any executor that satisfies pgDatabase.
func NewUserRepository(db pgDatabase) *UserRepository {
	return &UserRepository{
		db:      db,
		exec:    db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository instance operating within the supplied transaction.
func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	if tx == nil {
		return r
	}
	return &UserRepository{
		db:      r.db,
		exec:    tx,
		builder: r.builder,
	}
}

// Create inserts a new user row.
func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	return r.create(ctx, r.exec, user)
}

func (r *UserRepository) create(ctx context.Context, exec pgExecutor, user domain.User) error {
	stmt, args, err := r.builder.Insert("users").
		Columns(userColumns...).
		Values(
			user.ID,
			user.FirstName,
			user.LastName,
			user.Age,
			user.PhoneNumber,
			user.Address,
			user.PasswordHash,
			user.PassID,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user sql: %w", err)
	}

	if _, err := exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// CreateWithPass inserts the pass and the user referencing it in one transaction.
func (r *UserRepository) CreateWithPass(ctx context.Context, user domain.User, pass domain.Pass) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertPass(ctx, tx, r.builder, pass); err != nil {
			return err
		}
		return r.create(ctx, tx, user)
	})
}

// GetByID retrieves a user by identifier.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	stmt, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user sql: %w", err)
	}

	return r.scanUser(r.exec.QueryRow(ctx, stmt, args...))
}

// GetByName retrieves the first user matching the supplied name pair. The pair
// is not unique; callers accept the ambiguity.
func (r *UserRepository) GetByName(ctx context.Context, firstName, lastName string) (*domain.User, error) {
	stmt, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"first_name": firstName, "last_name": lastName}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user by name sql: %w", err)
	}

	return r.scanUser(r.exec.QueryRow(ctx, stmt, args...))
}

// GetWithPass resolves the user and its referenced pass in a single statement
// so a concurrent pass mutation cannot produce a torn read.
func (r *UserRepository) GetWithPass(ctx context.Context, id string) (*domain.User, *domain.Pass, error) {
	stmt, args, err := r.builder.
		Select(
			"u.id",
			"u.first_name",
			"u.last_name",
			"u.age",
			"u.phone_number",
			"u.address",
			"u.password_hash",
			"u.pass_id",
			"p.id",
			"p.level",
			"p.created_at",
			"p.updated_at",
		).
		From("users u").
		LeftJoin("passes p ON p.id = u.pass_id").
		Where(squirrel.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build select user with pass sql: %w", err)
	}

	var (
		user          domain.User
		passID        *string
		passLevel     *int
		passCreatedAt *time.Time
		passUpdatedAt *time.Time
	)

	row := r.exec.QueryRow(ctx, stmt, args...)
	if err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Age,
		&user.PhoneNumber,
		&user.Address,
		&user.PasswordHash,
		&user.PassID,
		&passID,
		&passLevel,
		&passCreatedAt,
		&passUpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, repository.ErrNotFound
		}
		return nil, nil, fmt.Errorf("scan user with pass: %w", err)
	}

	if passID == nil || passLevel == nil || passCreatedAt == nil {
		return &user, nil, nil
	}

	pass := domain.Pass{
		ID:        *passID,
		Level:     *passLevel,
		CreatedAt: *passCreatedAt,
		UpdatedAt: passUpdatedAt,
	}

	return &user, &pass, nil
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	stmt, args, err := r.builder.
		Select(userColumns...).
		From("users").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Age,
			&user.PhoneNumber,
			&user.Address,
			&user.PasswordHash,
			&user.PassID,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// Update persists the mutable fields of the supplied user.
func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	stmt, args, err := r.builder.
		Update("users").
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("age", user.Age).
		Set("phone_number", user.PhoneNumber).
		Set("address", user.Address).
		Set("password_hash", user.PasswordHash).
		Set("pass_id", user.PassID).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user sql: %w", err)
	}

	tag, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the user row. The referenced pass is left untouched.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	stmt, args, err := r.builder.
		Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user sql: %w", err)
	}

	tag, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Age,
		&user.PhoneNumber,
		&user.Address,
		&user.PasswordHash,
		&user.PassID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &user, nil
}

var _ port.UserRepository = (*UserRepository)(nil)
