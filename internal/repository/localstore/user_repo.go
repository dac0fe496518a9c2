// Package localstore implements the domain repositories on top of the
// local key-value store. Every write reads the whole value and replaces
// it; writes happen on discrete user actions, so last-writer-wins is fine.
package localstore

import (
	"context"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/pkg/store"
)

type userRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) domain.UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) All(ctx context.Context) ([]domain.UserProfile, error) {
	var users []domain.UserProfile
	r.store.Get(domain.StoreKeyUsers, &users)
	return users, nil
}

func (r *userRepository) Append(ctx context.Context, profile *domain.UserProfile) error {
	var users []domain.UserProfile
	r.store.Get(domain.StoreKeyUsers, &users)
	users = append(users, *profile)
	return r.store.Set(domain.StoreKeyUsers, users)
}

// FindByCredentials scans the stored list for an exact username+password
// pair. Registration never enforces username uniqueness, so the first
// match wins.
func (r *userRepository) FindByCredentials(ctx context.Context, username, password string) (*domain.UserProfile, error) {
	var users []domain.UserProfile
	r.store.Get(domain.StoreKeyUsers, &users)
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
