package usecase

import (
	"context"
	"time"

	"github.com/arklim/access-pass-service/internal/core/domain"
	"github.com/arklim/access-pass-service/internal/repository"
)

// fakeUserRepository is an in-memory port.UserRepository for service tests.
type fakeUserRepository struct {
	users  map[string]domain.User
	passes *fakePassRepository
}

func newFakeUserRepository(passes *fakePassRepository) *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]domain.User), passes: passes}
}

func (r *fakeUserRepository) Create(_ context.Context, user domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) CreateWithPass(_ context.Context, user domain.User, pass domain.Pass) error {
	r.passes.passes[pass.ID] = pass
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepository) GetByName(_ context.Context, firstName, lastName string) (*domain.User, error) {
	for _, user := range r.users {
		if user.FirstName == firstName && user.LastName == lastName {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepository) GetWithPass(_ context.Context, id string) (*domain.User, *domain.Pass, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil, repository.ErrNotFound
	}
	if user.PassID == nil {
		return &user, nil, nil
	}
	pass, ok := r.passes.passes[*user.PassID]
	if !ok {
		return &user, nil, nil
	}
	return &user, &pass, nil
}

func (r *fakeUserRepository) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *fakeUserRepository) Update(_ context.Context, user domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// fakePassRepository is an in-memory port.PassRepository for service tests.
type fakePassRepository struct {
	passes map[string]domain.Pass
	users  *fakeUserRepository
}

func newFakePassRepository() *fakePassRepository {
	return &fakePassRepository{passes: make(map[string]domain.Pass)}
}

func (r *fakePassRepository) CreateForUser(_ context.Context, pass domain.Pass, userID string) error {
	user, ok := r.users.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	r.passes[pass.ID] = pass
	user.PassID = &pass.ID
	r.users.users[userID] = user
	return nil
}

func (r *fakePassRepository) GetByID(_ context.Context, id string) (*domain.Pass, error) {
	pass, ok := r.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &pass, nil
}

func (r *fakePassRepository) List(_ context.Context) ([]domain.Pass, error) {
	out := make([]domain.Pass, 0, len(r.passes))
	for _, pass := range r.passes {
		out = append(out, pass)
	}
	return out, nil
}

func (r *fakePassRepository) UpdateLevel(_ context.Context, id string, level int, updatedAt time.Time) (*domain.Pass, error) {
	pass, ok := r.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	pass.Level = level
	pass.UpdatedAt = &updatedAt
	r.passes[id] = pass
	return &pass, nil
}

func (r *fakePassRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.passes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.passes, id)
	for userID, user := range r.users.users {
		if user.PassID != nil && *user.PassID == id {
			user.PassID = nil
			r.users.users[userID] = user
		}
	}
	return nil
}

// fakePlaceRepository is an in-memory port.PlaceRepository for service tests.
type fakePlaceRepository struct {
	places map[string]domain.Place
}

func newFakePlaceRepository() *fakePlaceRepository {
	return &fakePlaceRepository{places: make(map[string]domain.Place)}
}

func (r *fakePlaceRepository) Create(_ context.Context, place domain.Place) error {
	r.places[place.ID] = place
	return nil
}

func (r *fakePlaceRepository) GetByID(_ context.Context, id string) (*domain.Place, error) {
	place, ok := r.places[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &place, nil
}

func (r *fakePlaceRepository) List(_ context.Context) ([]domain.Place, error) {
	out := make([]domain.Place, 0, len(r.places))
	for _, place := range r.places {
		out = append(out, place)
	}
	return out, nil
}

func (r *fakePlaceRepository) ListAccessible(_ context.Context, passLevel, age int) ([]domain.Place, error) {
	out := make([]domain.Place, 0)
	for _, place := range r.places {
		if place.RequiredPassLevel <= passLevel && place.RequiredAgeLevel <= age {
			out = append(out, place)
		}
	}
	return out, nil
}

func (r *fakePlaceRepository) Update(_ context.Context, place domain.Place) error {
	if _, ok := r.places[place.ID]; !ok {
		return repository.ErrNotFound
	}
	r.places[place.ID] = place
	return nil
}

func (r *fakePlaceRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.places[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.places, id)
	return nil
}

func newFakeStores() (*fakeUserRepository, *fakePassRepository, *fakePlaceRepository) {
	passes := newFakePassRepository()
	users := newFakeUserRepository(passes)
	passes.users = users
	return users, passes, newFakePlaceRepository()
}
