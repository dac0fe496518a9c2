package localstore_test

import (
	"context"
	"testing"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/internal/repository/localstore"
	"skillbridge-backend/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("All should be empty before any registration", func(t *testing.T) {
		repo := localstore.NewUserRepository(store.NewMemoryStore())
		users, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Append should accumulate profiles in order", func(t *testing.T) {
		repo := localstore.NewUserRepository(store.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, &domain.UserProfile{ID: 1, Username: "first"}))
		require.NoError(t, repo.Append(ctx, &domain.UserProfile{ID: 2, Username: "second"}))

		users, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "first", users[0].Username)
		assert.Equal(t, "second", users[1].Username)
	})

	t.Run("FindByCredentials should need both fields to match", func(t *testing.T) {
		repo := localstore.NewUserRepository(store.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, &domain.UserProfile{ID: 1, Username: "ravik", Password: "secret12"}))

		user, err := repo.FindByCredentials(ctx, "ravik", "secret12")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)

		_, err = repo.FindByCredentials(ctx, "ravik", "wrong")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = repo.FindByCredentials(ctx, "nobody", "secret12")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Duplicate usernames should resolve to the first match", func(t *testing.T) {
		repo := localstore.NewUserRepository(store.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, &domain.UserProfile{ID: 1, Username: "dup", Password: "pw"}))
		require.NoError(t, repo.Append(ctx, &domain.UserProfile{ID: 2, Username: "dup", Password: "pw"}))

		user, err := repo.FindByCredentials(ctx, "dup", "pw")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})
}

func TestJobRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Posted should distinguish never-written from empty", func(t *testing.T) {
		repo := localstore.NewJobRepository(store.NewMemoryStore())

		_, ok := repo.Posted(ctx)
		assert.False(t, ok)

		require.NoError(t, repo.ReplacePosted(ctx, []domain.JobPosting{}))
		jobs, ok := repo.Posted(ctx)
		assert.True(t, ok)
		assert.Empty(t, jobs)
	})

	t.Run("Append should add to the posted list", func(t *testing.T) {
		repo := localstore.NewJobRepository(store.NewMemoryStore())
		require.NoError(t, repo.Append(ctx, &domain.JobPosting{ID: 1, Title: "Cook Position"}))
		require.NoError(t, repo.Append(ctx, &domain.JobPosting{ID: 2, Title: "Driver Position"}))

		jobs, ok := repo.Posted(ctx)
		assert.True(t, ok)
		require.Len(t, jobs, 2)
		assert.Equal(t, "Driver Position", jobs[1].Title)
	})

	t.Run("Hiring snapshot should round-trip", func(t *testing.T) {
		repo := localstore.NewJobRepository(store.NewMemoryStore())

		_, ok := repo.HiringSnapshot(ctx)
		assert.False(t, ok)

		draft := &domain.HiringDraft{FullName: "Anita Shah", OrganizationName: "Shah Constructions", JobType: "Cook"}
		require.NoError(t, repo.SaveHiringSnapshot(ctx, draft))

		got, ok := repo.HiringSnapshot(ctx)
		require.True(t, ok)
		assert.Equal(t, "Shah Constructions", got.OrganizationName)
	})

	t.Run("Selected job should round-trip with its skills", func(t *testing.T) {
		repo := localstore.NewJobRepository(store.NewMemoryStore())

		_, ok := repo.Selected(ctx)
		assert.False(t, ok)

		job := &domain.JobPosting{ID: 7, Title: "Cook Position", SkillsRequired: domain.NewTagSet("Cooking", "Cleaning")}
		require.NoError(t, repo.SaveSelected(ctx, job))

		got, ok := repo.Selected(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, []string{"Cooking", "Cleaning"}, got.SkillsRequired.Values())
	})
}

func TestSeekerRepository(t *testing.T) {
	ctx := context.Background()
	seekers := []domain.SeekerProfile{{ID: 1, Name: "Rajesh Kumar"}}

	t.Run("All should serve the fixed dataset", func(t *testing.T) {
		repo := localstore.NewSeekerRepository(store.NewMemoryStore(), seekers)
		got, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, seekers, got)
	})

	t.Run("Snapshot should round-trip", func(t *testing.T) {
		repo := localstore.NewSeekerRepository(store.NewMemoryStore(), seekers)

		_, ok := repo.Snapshot(ctx)
		assert.False(t, ok)

		draft := &domain.JobSeekerDraft{FullName: "Meena Patil", JobTypePreference: "Cook"}
		require.NoError(t, repo.SaveSnapshot(ctx, draft))

		got, ok := repo.Snapshot(ctx)
		require.True(t, ok)
		assert.Equal(t, "Meena Patil", got.FullName)
	})
}
