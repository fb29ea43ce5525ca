package driven

import (
	"context"

	"github.com/ericfisherdev/landoui/internal/domain/model"
)

// RevisionStore defines the driven port for revision snapshot persistence.
type RevisionStore interface {
	// Upsert replaces the stored snapshot, including its reviewer list.
	Upsert(ctx context.Context, rev model.Revision) error
	// Get returns nil, nil if no snapshot exists for id.
	Get(ctx context.Context, id string) (*model.Revision, error)
}
