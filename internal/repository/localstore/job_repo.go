package localstore

import (
	"context"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/pkg/store"
)

type jobRepository struct {
	store store.Store
}

func NewJobRepository(s store.Store) domain.JobRepository {
	return &jobRepository{store: s}
}

// Posted reports whether the key held a usable list so the caller can
// decide to seed. An unparseable value reads as absent.
func (r *jobRepository) Posted(ctx context.Context) ([]domain.JobPosting, bool) {
	var jobs []domain.JobPosting
	ok := r.store.Get(domain.StoreKeyPostedJobs, &jobs)
	return jobs, ok
}

func (r *jobRepository) ReplacePosted(ctx context.Context, jobs []domain.JobPosting) error {
	return r.store.Set(domain.StoreKeyPostedJobs, jobs)
}

func (r *jobRepository) Append(ctx context.Context, job *domain.JobPosting) error {
	var jobs []domain.JobPosting
	r.store.Get(domain.StoreKeyPostedJobs, &jobs)
	jobs = append(jobs, *job)
	return r.store.Set(domain.StoreKeyPostedJobs, jobs)
}

func (r *jobRepository) SaveHiringSnapshot(ctx context.Context, draft *domain.HiringDraft) error {
	return r.store.Set(domain.StoreKeyHiringFormData, draft)
}

func (r *jobRepository) HiringSnapshot(ctx context.Context) (*domain.HiringDraft, bool) {
	var draft domain.HiringDraft
	if !r.store.Get(domain.StoreKeyHiringFormData, &draft) {
		return nil, false
	}
	return &draft, true
}

func (r *jobRepository) SaveSelected(ctx context.Context, job *domain.JobPosting) error {
	return r.store.Set(domain.StoreKeySelectedJob, job)
}

func (r *jobRepository) Selected(ctx context.Context) (*domain.JobPosting, bool) {
	var job domain.JobPosting
	if !r.store.Get(domain.StoreKeySelectedJob, &job) {
		return nil, false
	}
	return &job, true
}
