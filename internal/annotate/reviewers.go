package annotate

import (
	"slices"

	"github.com/ericfisherdev/landoui/internal/domain/model"
)

// ReviewerFilter narrows a reviewer list. The zero value matches everyone.
type ReviewerFilter struct {
	// Statuses, when non-empty, keeps only reviewers in one of these states.
	Statuses []model.ReviewerStatus
	// ForOtherDiff, when non-nil, keeps only reviewers whose ForOtherDiff
	// equals *ForOtherDiff. Nil means "don't care", which is not the same as
	// a pointer to false.
	ForOtherDiff *bool
}

// SelectReviewers returns the reviewers matching f, in their original order.
// The input slice is never modified.
func SelectReviewers(reviewers []model.Reviewer, f ReviewerFilter) []model.Reviewer {
	selected := make([]model.Reviewer, 0, len(reviewers))
	for _, r := range reviewers {
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, r.Status) {
			continue
		}
		if f.ForOtherDiff != nil && r.ForOtherDiff != *f.ForOtherDiff {
			continue
		}
		selected = append(selected, r)
	}
	return selected
}
