package domain

import "context"

// SeekerProfile is a candidate record browsed on the employer dashboard.
// These come from the bundled sample dataset, not from registration.
type SeekerProfile struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	Education         string `json:"education"`
	Skills            TagSet `json:"skills"`
	JobTypePreference string `json:"jobTypePreference"`
	Experience        string `json:"experience"`
	Location          string `json:"location"`
}

// FilterCriteria narrows a job or candidate list. Empty clauses match
// everything; non-empty clauses are intersected.
type FilterCriteria struct {
	Search  string `form:"search" json:"search"`
	JobType string `form:"jobType" json:"jobType"`
	Skill   string `form:"skill" json:"skill"`
}

type SeekerRepository interface {
	All(ctx context.Context) ([]SeekerProfile, error)
	SaveSnapshot(ctx context.Context, draft *JobSeekerDraft) error
	Snapshot(ctx context.Context) (*JobSeekerDraft, bool)
}

type CandidateUsecase interface {
	ValidateJobSeekerForm(draft *JobSeekerDraft) map[string]string
	SubmitProfile(ctx context.Context, draft *JobSeekerDraft) error
	Browse(ctx context.Context, criteria FilterCriteria) ([]SeekerProfile, error)
	SeekerSummary(ctx context.Context) *JobSeekerDraft
}
