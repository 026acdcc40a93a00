package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	uuid "github.com/google/uuid"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/core/port"
)

var (
	// ErrInvalidLevel indicates a pass level outside the supported range.
	ErrInvalidLevel = fmt.Errorf("pass level must be between %d and %d", domain.MinPassLevel, domain.MaxPassLevel)
	// ErrNoPass indicates the user has no resolvable pass.
	ErrNoPass = errors.New("user has no pass")
)

// PassService manages clearance passes and their assignment to users.
type PassService struct {
	passes port.PassRepository
	users  port.UserRepository
}

// NewPassService constructs a PassService instance.
func NewPassService(passes port.PassRepository, users port.UserRepository) *PassService {
	return &PassService{passes: passes, users: users}
}

// List returns all passes.
func (s *PassService) List(ctx context.Context) ([]domain.Pass, error) {
	return s.passes.List(ctx)
}

// Get returns a single pass by id.
func (s *PassService) Get(ctx context.Context, id string) (*domain.Pass, error) {
	return s.passes.GetByID(ctx, id)
}

// Create issues a new pass and points the user's credential at it in one
// transaction. A previously held pass is left in place, unreferenced.
func (s *PassService) Create(ctx context.Context, userID string, level int) (domain.Pass, error) {
	if !domain.ValidLevel(level) {
		return domain.Pass{}, ErrInvalidLevel
	}

	pass := domain.Pass{
		ID:        uuid.NewString(),
		Level:     level,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.passes.CreateForUser(ctx, pass, userID); err != nil {
		return domain.Pass{}, err
	}

	return pass, nil
}

// UpdateLevel changes the clearance level of an existing pass.
func (s *PassService) UpdateLevel(ctx context.Context, id string, level int) (domain.Pass, error) {
	if !domain.ValidLevel(level) {
		return domain.Pass{}, ErrInvalidLevel
	}

	now := time.Now().UTC()
	updated, err := s.passes.UpdateLevel(ctx, id, level, now)
	if err != nil {
		return domain.Pass{}, err
	}

	return *updated, nil
}

// Delete removes a pass and detaches it from every user holding it.
func (s *PassService) Delete(ctx context.Context, id string) error {
	return s.passes.Delete(ctx, id)
}

// UserPass resolves the pass currently held by a user.
func (s *PassService) UserPass(ctx context.Context, userID string) (domain.Pass, error) {
	_, pass, err := s.users.GetWithPass(ctx, userID)
	if err != nil {
		return domain.Pass{}, err
	}
	if pass == nil {
		return domain.Pass{}, ErrNoPass
	}

	return *pass, nil
}
