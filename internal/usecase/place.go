package usecase

import (
	"context"
	"fmt"
	"strings"

	uuid "github.com/google/uuid"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/core/port"
)

// PlaceService manages protected places and their access requirements.
type PlaceService struct {
	places port.PlaceRepository
}

// NewPlaceService constructs a PlaceService instance.
func NewPlaceService(places port.PlaceRepository) *PlaceService {
	return &PlaceService{places: places}
}

// CreatePlaceInput carries the fields required to register a place.
type CreatePlaceInput struct {
	Address           string
	PhoneNumber       string
	RequiredPassLevel int
	RequiredAgeLevel  int
}

// UpdatePlaceInput carries optional fields for a partial place update.
// Nil fields keep their current value.
type UpdatePlaceInput struct {
	Address           *string
	PhoneNumber       *string
	RequiredPassLevel *int
	RequiredAgeLevel  *int
}

// List returns all places.
func (s *PlaceService) List(ctx context.Context) ([]domain.Place, error) {
	return s.places.List(ctx)
}

// Get returns a single place by id.
func (s *PlaceService) Get(ctx context.Context, id string) (*domain.Place, error) {
	return s.places.GetByID(ctx, id)
}

// Create registers a new place.
func (s *PlaceService) Create(ctx context.Context, input CreatePlaceInput) (domain.Place, error) {
	input.Address = strings.TrimSpace(input.Address)
	if input.Address == "" {
		return domain.Place{}, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if !domain.ValidLevel(input.RequiredPassLevel) {
		return domain.Place{}, ErrInvalidLevel
	}
	if input.RequiredAgeLevel < 0 {
		return domain.Place{}, fmt.Errorf("%w: required age must not be negative", ErrInvalidInput)
	}

	place := domain.Place{
		ID:                uuid.NewString(),
		Address:           input.Address,
		PhoneNumber:       input.PhoneNumber,
		RequiredPassLevel: input.RequiredPassLevel,
		RequiredAgeLevel:  input.RequiredAgeLevel,
	}

	if err := s.places.Create(ctx, place); err != nil {
		return domain.Place{}, fmt.Errorf("create place: %w", err)
	}

	return place, nil
}

// Update applies a partial update to an existing place.
func (s *PlaceService) Update(ctx context.Context, id string, input UpdatePlaceInput) (domain.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return domain.Place{}, err
	}

	if input.Address != nil {
		place.Address = strings.TrimSpace(*input.Address)
	}
	if input.PhoneNumber != nil {
		place.PhoneNumber = *input.PhoneNumber
	}
	if input.RequiredPassLevel != nil {
		if !domain.ValidLevel(*input.RequiredPassLevel) {
			return domain.Place{}, ErrInvalidLevel
		}
		place.RequiredPassLevel = *input.RequiredPassLevel
	}
	if input.RequiredAgeLevel != nil {
		if *input.RequiredAgeLevel < 0 {
			return domain.Place{}, fmt.Errorf("%w: required age must not be negative", ErrInvalidInput)
		}
		place.RequiredAgeLevel = *input.RequiredAgeLevel
	}

	if err := s.places.Update(ctx, *place); err != nil {
		return domain.Place{}, err
	}

	return *place, nil
}

// Delete removes a place.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	return s.places.Delete(ctx, id)
}
