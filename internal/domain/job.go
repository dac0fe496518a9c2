package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

type JobPosting struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Organization   string    `json:"organization"`
	JobType        string    `json:"jobType"`
	SkillsRequired TagSet    `json:"skillsRequired"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	PostedDate     time.Time `json:"postedDate"`
	PostedBy       string    `json:"postedBy"`

	// Engagement counters are display-only; nothing increments them.
	Applications int    `json:"applications"`
	Views        int    `json:"views"`
	Status       string `json:"status"`
}

type JobRepository interface {
	Posted(ctx context.Context) ([]JobPosting, bool)
	ReplacePosted(ctx context.Context, jobs []JobPosting) error
	Append(ctx context.Context, job *JobPosting) error
	SaveHiringSnapshot(ctx context.Context, draft *HiringDraft) error
	HiringSnapshot(ctx context.Context) (*HiringDraft, bool)
	SaveSelected(ctx context.Context, job *JobPosting) error
	Selected(ctx context.Context) (*JobPosting, bool)
}

type JobUsecase interface {
	ValidateHiringForm(draft *HiringDraft) map[string]string
	PostJob(ctx context.Context, draft *HiringDraft) (*JobPosting, error)
	PostedJobs(ctx context.Context) ([]JobPosting, error)
	Listings(ctx context.Context, criteria FilterCriteria) ([]JobPosting, error)
	SelectJob(ctx context.Context, id int64) (*JobPosting, error)
	SelectedJob(ctx context.Context) (*JobPosting, bool)
	HiringSummary(ctx context.Context) *HiringDraft
}
