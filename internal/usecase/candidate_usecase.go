package usecase

import (
	"context"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/internal/filter"
	"skillbridge-backend/pkg/apperror"
	"skillbridge-backend/pkg/validation"
)

type candidateUsecase struct {
	seekerRepo domain.SeekerRepository
	engine     *validation.Engine
}

func NewCandidateUsecase(seekerRepo domain.SeekerRepository, engine *validation.Engine) domain.CandidateUsecase {
	return &candidateUsecase{seekerRepo: seekerRepo, engine: engine}
}

func (u *candidateUsecase) ValidateJobSeekerForm(draft *domain.JobSeekerDraft) map[string]string {
	return u.engine.JobSeekerForm(draft)
}

func (u *candidateUsecase) SubmitProfile(ctx context.Context, draft *domain.JobSeekerDraft) error {
	if errs := u.engine.JobSeekerForm(draft); !errs.Valid() {
		return apperror.Validation(errs)
	}
	if err := u.seekerRepo.SaveSnapshot(ctx, draft); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *candidateUsecase) Browse(ctx context.Context, criteria domain.FilterCriteria) ([]domain.SeekerProfile, error) {
	seekers, err := u.seekerRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Seekers(seekers, criteria), nil
}

// SeekerSummary backs the seeker dashboard header, with the placeholder
// identity when no form was ever submitted.
func (u *candidateUsecase) SeekerSummary(ctx context.Context) *domain.JobSeekerDraft {
	if snapshot, ok := u.seekerRepo.Snapshot(ctx); ok {
		return snapshot
	}
	return &domain.JobSeekerDraft{
		FullName:          "Job Seeker",
		JobTypePreference: "Any",
	}
}
