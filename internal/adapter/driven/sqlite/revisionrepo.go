package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/landoui/internal/domain/model"
	"github.com/ericfisherdev/landoui/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RevisionStore = (*RevisionRepo)(nil)

// RevisionRepo is the SQLite implementation of the RevisionStore port interface.
type RevisionRepo struct {
	db *DB
}

// NewRevisionRepo creates a new RevisionRepo backed by the given DB.
func NewRevisionRepo(db *DB) *RevisionRepo {
	return &RevisionRepo{db: db}
}

// Upsert inserts or replaces a revision snapshot. The reviewer list is
// replaced as a whole and keeps the order it was given in.
func (r *RevisionRepo) Upsert(ctx context.Context, rev model.Revision) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op.

	const upsertQuery = `
		INSERT INTO revisions (id, title, summary, status, diff_id, bug_id, author_avatar_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			status = excluded.status,
			diff_id = excluded.diff_id,
			bug_id = excluded.bug_id,
			author_avatar_url = excluded.author_avatar_url,
			updated_at = excluded.updated_at
	`

	updatedAt := rev.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	if _, err := tx.ExecContext(ctx, upsertQuery,
		rev.ID, rev.Title, rev.Summary, string(rev.Status), rev.DiffID, rev.BugID,
		rev.AuthorAvatarURL, formatTime(updatedAt),
	); err != nil {
		return fmt.Errorf("upsert revision %s: %w", rev.ID, err)
	}

	const deleteQuery = `DELETE FROM revision_reviewers WHERE revision_id = ?`
	if _, err := tx.ExecContext(ctx, deleteQuery, rev.ID); err != nil {
		return fmt.Errorf("delete reviewers for %s: %w", rev.ID, err)
	}

	const insertQuery = `
		INSERT INTO revision_reviewers (revision_id, position, username, status, for_other_diff)
		VALUES (?, ?, ?, ?, ?)
	`
	for i, reviewer := range rev.Reviewers {
		if _, err := tx.ExecContext(ctx, insertQuery,
			rev.ID, i, reviewer.Username, string(reviewer.Status), boolToInt(reviewer.ForOtherDiff),
		); err != nil {
			return fmt.Errorf("insert reviewer %s for %s: %w", reviewer.Username, rev.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit revision %s: %w", rev.ID, err)
	}

	return nil
}

// Get retrieves a revision snapshot with its reviewers. Returns nil, nil if it
// does not exist.
func (r *RevisionRepo) Get(ctx context.Context, id string) (*model.Revision, error) {
	const query = `
		SELECT id, title, summary, status, diff_id, bug_id, author_avatar_url, updated_at
		FROM revisions
		WHERE id = ?
	`

	var rev model.Revision
	var status, updatedAt string
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(
		&rev.ID, &rev.Title, &rev.Summary, &status, &rev.DiffID, &rev.BugID,
		&rev.AuthorAvatarURL, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get revision %s: %w", id, err)
	}

	rev.Status = model.RevisionStatus(status)
	if rev.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	rev.Reviewers, err = r.reviewers(ctx, id)
	if err != nil {
		return nil, err
	}

	return &rev, nil
}

func (r *RevisionRepo) reviewers(ctx context.Context, revisionID string) ([]model.Reviewer, error) {
	const query = `
		SELECT username, status, for_other_diff
		FROM revision_reviewers
		WHERE revision_id = ?
		ORDER BY position
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, revisionID)
	if err != nil {
		return nil, fmt.Errorf("query reviewers for %s: %w", revisionID, err)
	}
	defer rows.Close()

	reviewers := []model.Reviewer{}
	for rows.Next() {
		var reviewer model.Reviewer
		var status string
		var forOtherDiff int
		if err := rows.Scan(&reviewer.Username, &status, &forOtherDiff); err != nil {
			return nil, fmt.Errorf("scan reviewer: %w", err)
		}
		reviewer.Status = model.ReviewerStatus(status)
		reviewer.ForOtherDiff = forOtherDiff != 0
		reviewers = append(reviewers, reviewer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewers: %w", err)
	}

	return reviewers, nil
}
