package usecase

import (
	"context"
	"fmt"
	"strings"

	uuid "github.com/google/uuid"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/core/port"
	"github.com/arklim/access-pass-service/internal/infra/security"
)

// UserService manages user records outside the registration flow.
type UserService struct {
	users  port.UserRepository
	passes port.PassRepository
}

// NewUserService constructs a UserService instance.
func NewUserService(users port.UserRepository, passes port.PassRepository) *UserService {
	return &UserService{users: users, passes: passes}
}

// CreateUserInput carries the fields required to create a user directly.
// PassID is optional; when set it must reference an existing pass.
type CreateUserInput struct {
	FirstName   string
	LastName    string
	Age         int
	PhoneNumber string
	Address     string
	Password    string
	PassID      *string
}

// UpdateUserInput carries optional fields for a partial user update.
// Nil fields keep their current value.
type UpdateUserInput struct {
	FirstName   *string
	LastName    *string
	Age         *int
	PhoneNumber *string
	Address     *string
	Password    *string
	PassID      *string
}

// List returns all users with password hashes stripped.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Get returns a single user by id with the password hash stripped.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sanitized := *user
	sanitized.PasswordHash = ""
	return &sanitized, nil
}

// Create adds a user record without issuing a pass or a token.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (domain.User, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if input.FirstName == "" || input.LastName == "" {
		return domain.User{}, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if input.Age < 0 {
		return domain.User{}, fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
	}
	if input.Password == "" {
		return domain.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if input.PassID != nil {
		if _, err := s.passes.GetByID(ctx, *input.PassID); err != nil {
			return domain.User{}, err
		}
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Age:          input.Age,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		PasswordHash: passwordHash,
		PassID:       input.PassID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Update applies a partial update to an existing user.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Age != nil {
		if *input.Age < 0 {
			return domain.User{}, fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
		}
		user.Age = *input.Age
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Password != nil {
		if *input.Password == "" {
			return domain.User{}, fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
		}
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if input.PassID != nil {
		if _, err := s.passes.GetByID(ctx, *input.PassID); err != nil {
			return domain.User{}, err
		}
		user.PassID = input.PassID
	}

	if err := s.users.Update(ctx, *user); err != nil {
		return domain.User{}, err
	}

	user.PasswordHash = ""
	return *user, nil
}

// Delete removes a user. A pass the user held is left in place.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
