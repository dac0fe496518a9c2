package usecase

import (
	"context"
	"time"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/internal/filter"
	"skillbridge-backend/pkg/apperror"
	"skillbridge-backend/pkg/validation"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	engine   *validation.Engine
	listings []domain.JobPosting
	seeds    []domain.JobPosting
}

// NewJobUsecase takes the fixed public listings and the jobs used to seed
// an empty posted list alongside the repository.
func NewJobUsecase(jobRepo domain.JobRepository, engine *validation.Engine, listings, seeds []domain.JobPosting) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, engine: engine, listings: listings, seeds: seeds}
}

func (u *jobUsecase) ValidateHiringForm(draft *domain.HiringDraft) map[string]string {
	return u.engine.HiringForm(draft)
}

// PostJob validates the hiring form, snapshots it for the dashboard
// header, and appends the posting built from it. The title is derived from
// the job type and the counters start at zero and stay there.
func (u *jobUsecase) PostJob(ctx context.Context, draft *domain.HiringDraft) (*domain.JobPosting, error) {
	if errs := u.engine.HiringForm(draft); !errs.Valid() {
		return nil, apperror.Validation(errs)
	}

	if err := u.jobRepo.SaveHiringSnapshot(ctx, draft); err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	job := &domain.JobPosting{
		ID:             now.UnixMilli(),
		Title:          draft.JobType + " Position",
		Organization:   draft.OrganizationName,
		JobType:        draft.JobType,
		SkillsRequired: draft.SkillsRequired,
		Description:    draft.Description,
		Location:       "India",
		PostedDate:     now,
		PostedBy:       draft.FullName,
		Applications:   0,
		Views:          0,
		Status:         domain.JobStatusActive,
	}
	if err := u.jobRepo.Append(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// PostedJobs returns the employer's posted list, seeding the sample jobs
// the first time the list is read.
func (u *jobUsecase) PostedJobs(ctx context.Context) ([]domain.JobPosting, error) {
	jobs, ok := u.jobRepo.Posted(ctx)
	if ok {
		return jobs, nil
	}
	if err := u.jobRepo.ReplacePosted(ctx, u.seeds); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.seeds, nil
}

func (u *jobUsecase) Listings(ctx context.Context, criteria domain.FilterCriteria) ([]domain.JobPosting, error) {
	return filter.Jobs(u.listings, criteria), nil
}

// SelectJob stores the chosen listing so the seeker form can prefill from
// it after navigation.
func (u *jobUsecase) SelectJob(ctx context.Context, id int64) (*domain.JobPosting, error) {
	for i := range u.listings {
		if u.listings[i].ID == id {
			job := u.listings[i]
			if err := u.jobRepo.SaveSelected(ctx, &job); err != nil {
				return nil, apperror.Internal(err)
			}
			return &job, nil
		}
	}
	return nil, apperror.NotFound("Job not found")
}

func (u *jobUsecase) SelectedJob(ctx context.Context) (*domain.JobPosting, bool) {
	return u.jobRepo.Selected(ctx)
}

// HiringSummary backs the employer dashboard header, falling back to the
// placeholder identity when no form was ever submitted.
func (u *jobUsecase) HiringSummary(ctx context.Context) *domain.HiringDraft {
	if snapshot, ok := u.jobRepo.HiringSnapshot(ctx); ok {
		return snapshot
	}
	return &domain.HiringDraft{
		FullName:         "Employer",
		OrganizationName: "Your Company",
		JobType:          "Any",
	}
}
