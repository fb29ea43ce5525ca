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
var _ driven.LandingStore = (*LandingRepo)(nil)

// LandingRepo is the SQLite implementation of the LandingStore port interface.
type LandingRepo struct {
	db *DB
}

// NewLandingRepo creates a new LandingRepo backed by the given DB.
func NewLandingRepo(db *DB) *LandingRepo {
	return &LandingRepo{db: db}
}

const landingColumns = `id, revision_id, diff_id, status, result, tree_url, requester_email, created_at, updated_at`

// Add inserts a landing job. Zero timestamps default to now; UpdatedAt
// defaults to CreatedAt.
func (r *LandingRepo) Add(ctx context.Context, job model.LandingJob) (int64, error) {
	const query = `
		INSERT INTO landing_jobs (revision_id, diff_id, status, result, tree_url, requester_email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := job.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := job.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		job.RevisionID, job.DiffID, string(job.Status), job.Result, job.TreeURL,
		job.RequesterEmail, formatTime(createdAt), formatTime(updatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("add landing job for %s: %w", job.RevisionID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read landing job id: %w", err)
	}

	return id, nil
}

// UpdateStatus records a new status and result for a job. Returns
// ErrLandingNotFound if no job has the given ID.
func (r *LandingRepo) UpdateStatus(ctx context.Context, id int64, status model.LandingStatus, result string, updatedAt time.Time) error {
	const query = `UPDATE landing_jobs SET status = ?, result = ?, updated_at = ? WHERE id = ?`

	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	res, err := r.db.Writer.ExecContext(ctx, query, string(status), result, formatTime(updatedAt), id)
	if err != nil {
		return fmt.Errorf("update landing job %d: %w", id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update landing job %d: %w", id, driven.ErrLandingNotFound)
	}

	return nil
}

// GetByID retrieves a landing job. Returns nil, nil if it does not exist.
func (r *LandingRepo) GetByID(ctx context.Context, id int64) (*model.LandingJob, error) {
	query := `SELECT ` + landingColumns + ` FROM landing_jobs WHERE id = ?`

	job, err := scanLandingJob(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get landing job %d: %w", id, err)
	}

	return job, nil
}

// ListByRevision returns the landing jobs of a revision, newest first.
func (r *LandingRepo) ListByRevision(ctx context.Context, revisionID string) ([]model.LandingJob, error) {
	query := `SELECT ` + landingColumns + ` FROM landing_jobs WHERE revision_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query, revisionID)
	if err != nil {
		return nil, fmt.Errorf("query landing jobs for %s: %w", revisionID, err)
	}
	defer rows.Close()

	var jobs []model.LandingJob
	for rows.Next() {
		job, err := scanLandingJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan landing job: %w", err)
		}
		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate landing jobs: %w", err)
	}

	return jobs, nil
}

func scanLandingJob(s scanner) (*model.LandingJob, error) {
	var job model.LandingJob
	var status, createdAt, updatedAt string

	err := s.Scan(
		&job.ID, &job.RevisionID, &job.DiffID, &status, &job.Result,
		&job.TreeURL, &job.RequesterEmail, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.Status = model.LandingStatus(status)

	if job.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if job.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &job, nil
}
