package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/landoui/internal/application"
	"github.com/ericfisherdev/landoui/internal/domain/model"
)

func testRevision() *model.Revision {
	return &model.Revision{
		ID:              "D42",
		Title:           "Bug 1234 - Fix <frame> ordering",
		Summary:         "Follow-up to Bug 99.",
		Status:          model.RevisionStatusAccepted,
		DiffID:          7,
		BugID:           1234,
		AuthorAvatarURL: "https://www.gravatar.com/avatar/abc?s=80",
		Reviewers: []model.Reviewer{
			{Username: "alice", Status: model.ReviewerStatusAccepted},
			{Username: "bob", Status: model.ReviewerStatusRejected, ForOtherDiff: true},
			{Username: "carol", Status: model.ReviewerStatusBlocking},
			{Username: "dave", Status: model.ReviewerStatusAdded},
		},
	}
}

func TestToRevisionPageViewModel_Snapshot(t *testing.T) {
	a := newTestAnnotator(t)

	got := toRevisionPageViewModel(a, application.RevisionPage{
		RevisionID: "D42",
		Revision:   testRevision(),
	})

	assert.True(t, got.HasSnapshot)
	assert.Equal(t, "https://phabricator.example/D42?id=7", got.RevisionURL)
	assert.Equal(t, "https://bugzilla.example/show_bug.cgi?id=1234", got.BugURL)
	assert.Equal(t, "https://www.gravatar.com/avatar/abc?d=identicon&s=80", got.AvatarURL)
	assert.Equal(t,
		`<a href="https://bugzilla.example/show_bug.cgi?id=1234">Bug 1234</a> - Fix &lt;frame&gt; ordering`,
		got.TitleHTML)
	assert.Equal(t, "Badge Badge--positive", got.StatusBadge.Class)
	assert.Equal(t, "accepted", got.StatusBadge.Text)
	assert.Contains(t, got.SummaryHTML, `href="https://bugzilla.example/show_bug.cgi?id=99"`)
	assert.False(t, got.HasLandings)

	require.Len(t, got.ReviewerGroups, 4)
	assert.Equal(t, "Blocking reviewers", got.ReviewerGroups[0].Title)
	assert.Equal(t, "carol", got.ReviewerGroups[0].Reviewers[0].Username)
	assert.Equal(t, "must review", got.ReviewerGroups[0].Reviewers[0].ActionText)

	assert.Equal(t, "Accepted", got.ReviewerGroups[1].Title)
	assert.Equal(t, "Badge Badge--positive", got.ReviewerGroups[1].Reviewers[0].BadgeClass)

	assert.Equal(t, "Reviewers", got.ReviewerGroups[2].Title)
	assert.Equal(t, "dave", got.ReviewerGroups[2].Reviewers[0].Username)

	assert.Equal(t, "Reviewed a prior diff", got.ReviewerGroups[3].Title)
	assert.Equal(t, "bob", got.ReviewerGroups[3].Reviewers[0].Username)
}

func TestToRevisionPageViewModel_PriorDiffReviewers(t *testing.T) {
	a := newTestAnnotator(t)
	rev := testRevision()
	rev.Reviewers = []model.Reviewer{
		{Username: "bob", Status: model.ReviewerStatusRejected, ForOtherDiff: true},
	}

	got := toRevisionPageViewModel(a, application.RevisionPage{RevisionID: "D42", Revision: rev})

	require.Len(t, got.ReviewerGroups, 1)
	assert.Equal(t, "Reviewed a prior diff", got.ReviewerGroups[0].Title)
	assert.Equal(t, "Badge Badge--warning", got.ReviewerGroups[0].Reviewers[0].BadgeClass)
	assert.Equal(t, "requested changes to a prior diff", got.ReviewerGroups[0].Reviewers[0].ActionText)
}

func TestToRevisionPageViewModel_LandingsOnly(t *testing.T) {
	a := newTestAnnotator(t)
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got := toRevisionPageViewModel(a, application.RevisionPage{
		RevisionID: "D42",
		Landings: []model.LandingJob{
			{
				ID:         2,
				RevisionID: "D42",
				DiffID:     8,
				Status:     model.LandingStatusLanded,
				Result:     "deadbeef",
				TreeURL:    "https://hg.example/central",
				UpdatedAt:  updated,
			},
			{ID: 1, RevisionID: "D42", Status: model.LandingStatusFailed, Result: "merge <conflict>"},
		},
		LatestStatus: model.LandingStatusLanded,
	})

	assert.False(t, got.HasSnapshot)
	assert.Equal(t, "D42", got.TitleHTML)
	assert.Equal(t, "https://phabricator.example/D42", got.RevisionURL)
	assert.Empty(t, got.ReviewerGroups)

	assert.True(t, got.HasLandings)
	assert.Equal(t, "Successfully Landed", got.LatestBadge.Text)
	require.Len(t, got.Landings, 2)

	landed := got.Landings[0]
	assert.Equal(t, "https://phabricator.example/D42?id=8", landed.DiffURL)
	assert.Equal(t,
		`<a href="https://hg.example/central/rev/deadbeef">https://hg.example/central/rev/deadbeef</a>`,
		landed.ResultHTML)
	assert.Equal(t, "2026-03-01T12:00:00Z", landed.UpdatedAt)

	failed := got.Landings[1]
	assert.Empty(t, failed.DiffURL)
	assert.Equal(t, "merge &lt;conflict&gt;", failed.ResultHTML)
	assert.Equal(t, "Badge Badge--negative", failed.Badge.Class)
	assert.Equal(t, "Failed to Land", failed.Badge.Text)
}

func TestToRevisionPageViewModel_InvalidAvatarDropped(t *testing.T) {
	a := newTestAnnotator(t)
	rev := testRevision()
	rev.AuthorAvatarURL = "not a url"

	got := toRevisionPageViewModel(a, application.RevisionPage{RevisionID: "D42", Revision: rev})

	assert.Empty(t, got.AvatarURL)
}
