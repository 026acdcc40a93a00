package usecase

import (
	"context"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/core/port"
)

// AccessService answers access questions by combining a user's pass with a
// place's requirements.
type AccessService struct {
	users  port.UserRepository
	places port.PlaceRepository
}

// NewAccessService constructs an AccessService instance.
func NewAccessService(users port.UserRepository, places port.PlaceRepository) *AccessService {
	return &AccessService{users: users, places: places}
}

// Check reports whether the user may enter the place. It returns ErrNoPass
// when the user holds no resolvable pass; a false result with a nil error
// means the pass exists but does not satisfy the place's requirements.
func (s *AccessService) Check(ctx context.Context, userID, placeID string) (bool, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return false, err
	}

	user, pass, err := s.users.GetWithPass(ctx, userID)
	if err != nil {
		return false, err
	}
	if pass == nil {
		return false, ErrNoPass
	}

	return domain.Eligible(*user, *pass, *place), nil
}

// AccessiblePlaces lists every place the user's pass and age qualify for.
func (s *AccessService) AccessiblePlaces(ctx context.Context, userID string) ([]domain.Place, error) {
	user, pass, err := s.users.GetWithPass(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pass == nil {
		return nil, ErrNoPass
	}

	return s.places.ListAccessible(ctx, pass.Level, user.Age)
}
