package model

// Reviewer is a reviewer attached to a revision.
type Reviewer struct {
	Username string
	Status   ReviewerStatus
	// ForOtherDiff is true when Status was recorded against a diff other than
	// the one currently displayed.
	ForOtherDiff bool
}
