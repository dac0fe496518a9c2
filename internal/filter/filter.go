// Package filter narrows in-memory job and candidate lists with
// case-insensitive substring matching. Filtering is pure and stable: the
// result keeps the input's relative order and re-running with the same
// criteria changes nothing.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"skillbridge-backend/internal/domain"
)

func fold(s string) string {
	return cases.Fold().String(s)
}

func contains(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}

func anySkill(skills domain.TagSet, needle string) bool {
	for _, skill := range skills.Values() {
		if contains(skill, needle) {
			return true
		}
	}
	return false
}

// Jobs applies the dashboard filters to job listings. The search clause
// matches title, organization or any required skill; the job-type clause
// is an exact match; the skill clause matches any required skill. All
// supplied clauses must hold.
func Jobs(items []domain.JobPosting, c domain.FilterCriteria) []domain.JobPosting {
	out := make([]domain.JobPosting, 0, len(items))
	for _, job := range items {
		if c.Search != "" &&
			!contains(job.Title, c.Search) &&
			!contains(job.Organization, c.Search) &&
			!anySkill(job.SkillsRequired, c.Search) {
			continue
		}
		if c.JobType != "" && job.JobType != c.JobType {
			continue
		}
		if c.Skill != "" && !anySkill(job.SkillsRequired, c.Skill) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// Seekers applies the employer dashboard filters to candidates. The search
// clause matches name or any skill; the job-type clause compares the
// candidate's preference exactly.
func Seekers(items []domain.SeekerProfile, c domain.FilterCriteria) []domain.SeekerProfile {
	out := make([]domain.SeekerProfile, 0, len(items))
	for _, seeker := range items {
		if c.Search != "" &&
			!contains(seeker.Name, c.Search) &&
			!anySkill(seeker.Skills, c.Search) {
			continue
		}
		if c.JobType != "" && seeker.JobTypePreference != c.JobType {
			continue
		}
		if c.Skill != "" && !anySkill(seeker.Skills, c.Skill) {
			continue
		}
		out = append(out, seeker)
	}
	return out
}
