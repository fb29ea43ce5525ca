package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/landoui/internal/domain/model"
)

func makeRevision(id string) model.Revision {
	return model.Revision{
		ID:              id,
		Title:           "Bug 1234 - Fix the frobnicator",
		Summary:         "Fixes **Bug 1234**.",
		Status:          model.RevisionStatusAccepted,
		DiffID:          1001,
		BugID:           1234,
		AuthorAvatarURL: "https://s.gravatar.com/avatar/x",
		Reviewers: []model.Reviewer{
			{Username: "zed", Status: model.ReviewerStatusAccepted},
			{Username: "amy", Status: model.ReviewerStatusRejected, ForOtherDiff: true},
			{Username: "bob", Status: model.ReviewerStatusBlocking},
		},
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRevisionRepo_UpsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRevisionRepo(db)
	ctx := context.Background()

	rev := makeRevision("D42")
	require.NoError(t, repo.Upsert(ctx, rev))

	got, err := repo.Get(ctx, "D42")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, rev, *got)
}

func TestRevisionRepo_UpsertReplacesReviewers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRevisionRepo(db)
	ctx := context.Background()

	rev := makeRevision("D42")
	require.NoError(t, repo.Upsert(ctx, rev))

	rev.Title = "Updated title"
	rev.Status = model.RevisionStatusNeedsRevision
	rev.Reviewers = []model.Reviewer{{Username: "amy", Status: model.ReviewerStatusAdded}}
	require.NoError(t, repo.Upsert(ctx, rev))

	got, err := repo.Get(ctx, "D42")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, model.RevisionStatusNeedsRevision, got.Status)
	assert.Equal(t, rev.Reviewers, got.Reviewers)
}

func TestRevisionRepo_NoReviewers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRevisionRepo(db)
	ctx := context.Background()

	rev := makeRevision("D5")
	rev.Reviewers = nil
	require.NoError(t, repo.Upsert(ctx, rev))

	got, err := repo.Get(ctx, "D5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Reviewers)
}

func TestRevisionRepo_GetNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRevisionRepo(db)

	got, err := repo.Get(context.Background(), "D404")

	require.NoError(t, err)
	assert.Nil(t, got)
}
