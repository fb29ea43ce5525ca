package model

// LandingStatus represents the state of a landing (or transplant) request.
type LandingStatus string

const (
	LandingStatusAborted   LandingStatus = "aborted"
	LandingStatusSubmitted LandingStatus = "submitted"
	LandingStatusLanded    LandingStatus = "landed"
	LandingStatusFailed    LandingStatus = "failed"
)

// IsKnown reports whether s is one of the landing statuses Lando reports.
func (s LandingStatus) IsKnown() bool {
	switch s {
	case LandingStatusAborted, LandingStatusSubmitted, LandingStatusLanded, LandingStatusFailed:
		return true
	}
	return false
}

// RevisionStatus represents the state of a revision in the code review tool.
type RevisionStatus string

const (
	RevisionStatusAbandoned      RevisionStatus = "abandoned"
	RevisionStatusAccepted       RevisionStatus = "accepted"
	RevisionStatusChangesPlanned RevisionStatus = "changes-planned"
	RevisionStatusPublished      RevisionStatus = "published"
	RevisionStatusNeedsReview    RevisionStatus = "needs-review"
	RevisionStatusNeedsRevision  RevisionStatus = "needs-revision"
	RevisionStatusDraft          RevisionStatus = "draft"
)

// ReviewerStatus represents a reviewer's standing on a revision.
type ReviewerStatus string

const (
	ReviewerStatusAccepted ReviewerStatus = "accepted"
	ReviewerStatusRejected ReviewerStatus = "rejected"
	ReviewerStatusAdded    ReviewerStatus = "added"
	ReviewerStatusBlocking ReviewerStatus = "blocking"
)
