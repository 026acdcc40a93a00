package port

import (
	"context"

	"github.com/arklim/access-pass-service/internal/core/domain"
)

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	Create(ctx context.Context, place domain.Place) error
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	List(ctx context.Context) ([]domain.Place, error)
	Update(ctx context.Context, place domain.Place) error
	Delete(ctx context.Context, id string) error
	// ListAccessible returns every place whose requirements are met by the
	// supplied pass level and age. Order is unspecified.
	ListAccessible(ctx context.Context, passLevel, age int) ([]domain.Place, error)
}
