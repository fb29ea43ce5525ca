package model

import "time"

// Revision is a snapshot of a code review revision as last pushed to the UI.
type Revision struct {
	ID              string // e.g. "D123"
	Title           string
	Summary         string // markdown
	Status          RevisionStatus
	DiffID          int64
	BugID           int64 // 0 when the revision references no bug
	AuthorAvatarURL string
	Reviewers       []Reviewer
	UpdatedAt       time.Time
}
