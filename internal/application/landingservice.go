package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/config"
	"github.com/ericfisherdev/landoui/internal/domain/model"
	"github.com/ericfisherdev/landoui/internal/domain/port/driven"
)

var (
	// ErrInvalidLanding indicates a landing job or update failed validation.
	ErrInvalidLanding = errors.New("invalid landing")
	// ErrInvalidRevision indicates a malformed revision id or snapshot.
	ErrInvalidRevision = errors.New("invalid revision")
	// ErrRevisionNotFound indicates nothing is known about a revision.
	ErrRevisionNotFound = errors.New("revision not found")
)

var revisionIDPattern = regexp.MustCompile(`^D[0-9]+$`)

// RevisionPage is everything the UI knows about a revision.
type RevisionPage struct {
	RevisionID string
	// Revision is nil when landings were recorded before any snapshot was pushed.
	Revision *model.Revision
	Landings []model.LandingJob // newest first
	// LatestStatus is the status of the most recently updated landing, or ""
	// when there are no landings.
	LatestStatus model.LandingStatus
}

// LandingService records landing jobs and revision snapshots and assembles
// revision pages. It depends only on port interfaces.
type LandingService struct {
	landingStore  driven.LandingStore
	revisionStore driven.RevisionStore
	logger        *slog.Logger
	now           func() time.Time
}

// NewLandingService creates a new LandingService with the required dependencies.
func NewLandingService(
	landingStore driven.LandingStore,
	revisionStore driven.RevisionStore,
	logger *slog.Logger,
) *LandingService {
	return &LandingService{
		landingStore:  landingStore,
		revisionStore: revisionStore,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// ValidRevisionID reports whether id looks like "D123".
func ValidRevisionID(id string) bool {
	return revisionIDPattern.MatchString(id)
}

// RecordLanding stores a new landing job. An empty status defaults to
// submitted. A tree url, when set, must be an absolute http(s) url.
func (s *LandingService) RecordLanding(ctx context.Context, job model.LandingJob) (int64, error) {
	if !ValidRevisionID(job.RevisionID) {
		return 0, fmt.Errorf("%w: revision id %q", ErrInvalidLanding, job.RevisionID)
	}
	if job.Status == "" {
		job.Status = model.LandingStatusSubmitted
	}
	if err := validateLandingResult(job.Status, job.Result); err != nil {
		return 0, err
	}
	if job.TreeURL != "" {
		if _, err := config.ParseHTTPURL(job.TreeURL); err != nil {
			return 0, fmt.Errorf("%w: tree url %w", ErrInvalidLanding, err)
		}
	}

	now := s.now()
	job.CreatedAt = now
	job.UpdatedAt = now

	id, err := s.landingStore.Add(ctx, job)
	if err != nil {
		return 0, err
	}

	s.logger.Info("landing recorded", "id", id, "revision", job.RevisionID, "status", job.Status)
	return id, nil
}

// UpdateLanding records a status change for an existing job.
func (s *LandingService) UpdateLanding(ctx context.Context, id int64, status model.LandingStatus, result string) error {
	if err := validateLandingResult(status, result); err != nil {
		return err
	}

	if err := s.landingStore.UpdateStatus(ctx, id, status, result, s.now()); err != nil {
		return err
	}

	s.logger.Info("landing updated", "id", id, "status", status)
	return nil
}

// Landing returns a single landing job, or driven.ErrLandingNotFound.
func (s *LandingService) Landing(ctx context.Context, id int64) (*model.LandingJob, error) {
	job, err := s.landingStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("landing %d: %w", id, driven.ErrLandingNotFound)
	}
	return job, nil
}

// SaveRevision stores a revision snapshot, replacing any previous one.
func (s *LandingService) SaveRevision(ctx context.Context, rev model.Revision) error {
	if !ValidRevisionID(rev.ID) {
		return fmt.Errorf("%w: revision id %q", ErrInvalidRevision, rev.ID)
	}
	if rev.Status == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidRevision)
	}
	rev.UpdatedAt = s.now()

	return s.revisionStore.Upsert(ctx, rev)
}

// RevisionPage assembles the snapshot and landing history of a revision.
// Returns ErrRevisionNotFound when neither exists.
func (s *LandingService) RevisionPage(ctx context.Context, revisionID string) (*RevisionPage, error) {
	if !ValidRevisionID(revisionID) {
		return nil, fmt.Errorf("%w: revision id %q", ErrInvalidRevision, revisionID)
	}

	rev, err := s.revisionStore.Get(ctx, revisionID)
	if err != nil {
		return nil, err
	}

	landings, err := s.landingStore.ListByRevision(ctx, revisionID)
	if err != nil {
		return nil, err
	}

	if rev == nil && len(landings) == 0 {
		return nil, fmt.Errorf("%s: %w", revisionID, ErrRevisionNotFound)
	}

	events := make([]model.StatusEvent, 0, len(landings))
	for _, job := range landings {
		events = append(events, job.StatusEvent())
	}

	page := &RevisionPage{
		RevisionID: revisionID,
		Revision:   rev,
		Landings:   landings,
	}
	if latest, ok := annotate.LatestStatus(events); ok {
		page.LatestStatus = model.LandingStatus(latest)
	}

	return page, nil
}

// validateLandingResult checks that status is known and that a landed job
// carries the commit it landed as.
func validateLandingResult(status model.LandingStatus, result string) error {
	if !status.IsKnown() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidLanding, status)
	}
	if status == model.LandingStatusLanded && result == "" {
		return fmt.Errorf("%w: landed jobs need a commit id", ErrInvalidLanding)
	}
	return nil
}
