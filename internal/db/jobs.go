package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-ats/internal/dedupe"
	"github.com/jonathan/job-ats/internal/types"
)

// -----------------------------------------------------------------------------
// Job Methods
// -----------------------------------------------------------------------------

// UpsertJob stores a normalized job keyed by fingerprint. An existing row is
// replaced only when the incoming record is at least as rich, so the store
// applies the same rule as dedupe.Dedupe. It reports whether the record was written.
func (db *DB) UpsertJob(ctx context.Context, job types.JobNormalized) (bool, error) {
	job = prepareJob(job)

	record, err := json.Marshal(job)
	if err != nil {
		return false, fmt.Errorf("failed to marshal job: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, fingerprint, title, company, location, url, language,
		                   richness, confidence, record)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (fingerprint) DO UPDATE SET
		     title = EXCLUDED.title,
		     company = EXCLUDED.company,
		     location = EXCLUDED.location,
		     url = EXCLUDED.url,
		     language = EXCLUDED.language,
		     richness = EXCLUDED.richness,
		     confidence = EXCLUDED.confidence,
		     record = EXCLUDED.record,
		     updated_at = NOW()
		 WHERE EXCLUDED.richness >= jobs.richness
		 RETURNING id`,
		uuid.New(), job.Fingerprint, job.Title, job.Company, job.Location, job.URL,
		string(job.Language), job.Richness, job.Confidence, record,
	).Scan(&id)
	if err != nil {
		// The conflict guard filtered the update: the stored record is richer
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to upsert job %s: %w", job.Fingerprint, err)
	}
	return true, nil
}

// GetJobByFingerprint retrieves a job, or nil when none is stored
func (db *DB) GetJobByFingerprint(ctx context.Context, fingerprint string) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, richness, record, created_at, updated_at
		 FROM jobs WHERE fingerprint = $1`,
		fingerprint,
	)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs retrieves recently updated jobs with optional filters
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]Job, error) {
	query, args := buildListJobsQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

// DeleteJob removes a job by fingerprint
func (db *DB) DeleteJob(ctx context.Context, fingerprint string) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE fingerprint = $1`, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", fingerprint)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// prepareJob fills the fingerprint when missing and recomputes richness
func prepareJob(job types.JobNormalized) types.JobNormalized {
	if job.Fingerprint == "" {
		job.Fingerprint = dedupe.Fingerprint(job.Title, job.Company, job.Location, job.URL)
	}
	if job.Keywords == nil {
		job.Keywords = []string{}
	}
	job.Richness = dedupe.Richness(job)
	return job
}

func buildListJobsQuery(filters JobFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	query := `SELECT id, richness, record, created_at, updated_at
		FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.Title != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argNum)
		args = append(args, "%"+filters.Title+"%")
		argNum++
	}
	if filters.Language != "" {
		query += fmt.Sprintf(" AND language = $%d", argNum)
		args = append(args, string(filters.Language))
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY updated_at DESC, fingerprint LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	argNum++

	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, filters.Offset)
	}
	return query, args
}

func scanJob(row pgx.Row) (*Job, error) {
	var job Job
	var record []byte
	if err := row.Scan(&job.ID, &job.Richness, &record, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return nil, err
	}
	if err := decodeRecord(record, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func decodeRecord(record []byte, job *Job) error {
	if err := json.Unmarshal(record, &job.Record); err != nil {
		return fmt.Errorf("failed to decode job record: %w", err)
	}
	job.Record.Richness = job.Richness
	if job.Record.Keywords == nil {
		job.Record.Keywords = []string{}
	}
	return nil
}
