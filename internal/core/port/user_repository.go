package port

import (
	"context"

	"github.com/arklim/access-pass-service/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a single user row.
	Create(ctx context.Context, user domain.User) error
	// CreateWithPass inserts the pass and the user referencing it as one
	// transaction; neither row survives a failure of the other.
	CreateWithPass(ctx context.Context, user domain.User, pass domain.Pass) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByName returns the first user matching the (first, last) name pair.
	GetByName(ctx context.Context, firstName, lastName string) (*domain.User, error)
	// GetWithPass resolves the user together with its referenced pass in a
	// single statement. The pass is nil when the reference is absent or
	// dangling.
	GetWithPass(ctx context.Context, id string) (*domain.User, *domain.Pass, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id string) error
}
