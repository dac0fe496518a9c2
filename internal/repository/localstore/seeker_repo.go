package localstore

import (
	"context"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/pkg/store"
)

type seekerRepository struct {
	store   store.Store
	seekers []domain.SeekerProfile
}

// NewSeekerRepository serves the fixed candidate dataset and keeps the
// seeker form snapshot in the store.
func NewSeekerRepository(s store.Store, seekers []domain.SeekerProfile) domain.SeekerRepository {
	return &seekerRepository{store: s, seekers: seekers}
}

func (r *seekerRepository) All(ctx context.Context) ([]domain.SeekerProfile, error) {
	return r.seekers, nil
}

func (r *seekerRepository) SaveSnapshot(ctx context.Context, draft *domain.JobSeekerDraft) error {
	return r.store.Set(domain.StoreKeyJobSeekerFormData, draft)
}

func (r *seekerRepository) Snapshot(ctx context.Context) (*domain.JobSeekerDraft, bool) {
	var draft domain.JobSeekerDraft
	if !r.store.Get(domain.StoreKeyJobSeekerFormData, &draft) {
		return nil, false
	}
	return &draft, true
}
