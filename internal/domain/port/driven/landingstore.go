package driven

import (
	"context"
	"errors"
	"time"

	"github.com/ericfisherdev/landoui/internal/domain/model"
)

// ErrLandingNotFound indicates the requested landing job does not exist.
var ErrLandingNotFound = errors.New("landing job not found")

// LandingStore defines the driven port for landing job persistence.
// UpdateStatus returns ErrLandingNotFound if the job does not exist.
type LandingStore interface {
	// Add inserts a job and returns its assigned ID.
	Add(ctx context.Context, job model.LandingJob) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.LandingStatus, result string, updatedAt time.Time) error
	// GetByID returns nil, nil if the job does not exist.
	GetByID(ctx context.Context, id int64) (*model.LandingJob, error)
	// ListByRevision returns all jobs for a revision, newest first.
	ListByRevision(ctx context.Context, revisionID string) ([]model.LandingJob, error)
}
