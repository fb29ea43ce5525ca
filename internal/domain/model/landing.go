package model

import "time"

// StatusEvent is a single entry of a status history.
type StatusEvent struct {
	Status    string
	UpdatedAt time.Time
}

// LandingResult is the outcome of a landing request as reported by Lando.
type LandingResult struct {
	Status LandingStatus
	// Result holds the landed commit id when Status is landed. Otherwise it may
	// hold a free-form message, e.g. that the landing was queued.
	Result  string
	TreeURL string
}

// TransplantResult is the outcome of a transplant request.
type TransplantResult struct {
	Status        LandingStatus
	Details       string // commit id when Status is landed
	RepositoryURL string
}

// LandingJob is a landing request for a revision, tracked by the UI.
type LandingJob struct {
	ID             int64
	RevisionID     string // e.g. "D123"
	DiffID         int64
	Status         LandingStatus
	Result         string
	TreeURL        string
	RequesterEmail string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LandingResult projects the job onto the result shape used for linkification.
func (j LandingJob) LandingResult() LandingResult {
	return LandingResult{Status: j.Status, Result: j.Result, TreeURL: j.TreeURL}
}

// StatusEvent projects the job onto a status history entry.
func (j LandingJob) StatusEvent() StatusEvent {
	return StatusEvent{Status: string(j.Status), UpdatedAt: j.UpdatedAt}
}
