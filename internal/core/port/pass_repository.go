package port

import (
	"context"
	"time"

	"github.com/arklim/access-pass-service/internal/core/domain"
)

// PassRepository defines persistence operations for passes.
type PassRepository interface {
	// CreateForUser inserts the pass and repoints the target user's reference
	// to it within one transaction. The user's previous pass is left in place.
	CreateForUser(ctx context.Context, pass domain.Pass, userID string) error
	GetByID(ctx context.Context, id string) (*domain.Pass, error)
	List(ctx context.Context) ([]domain.Pass, error)
	UpdateLevel(ctx context.Context, id string, level int, updatedAt time.Time) (*domain.Pass, error)
	// Delete unlinks every user referencing the pass and removes it, as one
	// transaction, so no user is left pointing at a missing pass.
	Delete(ctx context.Context, id string) error
}
