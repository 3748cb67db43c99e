package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

const jobColumns = `id, operator_id, status, attempts, error, queued_at, started_at, finished_at`

func scanJob(row pgx.Row) (ports.RecomputeJob, error) {
	var j ports.RecomputeJob
	var status string
	err := row.Scan(&j.ID, &j.OperatorID, &status, &j.Attempts, &j.Error, &j.QueuedAt, &j.StartedAt, &j.FinishedAt)
	j.Status = ports.JobStatus(status)
	return j, err
}

func (db *DB) Enqueue(ctx context.Context, operatorID string) (string, error) {
	if !validID(operatorID) {
		return "", ports.ErrNotFound
	}
	var id string
	err := db.Pool.QueryRow(ctx, `INSERT INTO recompute_jobs (operator_id) VALUES ($1) RETURNING id`, operatorID).Scan(&id)
	return id, err
}

func (db *DB) Job(ctx context.Context, jobID string) (ports.RecomputeJob, error) {
	if !validID(jobID) {
		return ports.RecomputeJob{}, ports.ErrNotFound
	}
	j, err := scanJob(db.Pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM recompute_jobs WHERE id = $1`, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return j, ports.ErrNotFound
	}
	return j, err
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.RecomputeJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var id string
	err = tx.QueryRow(ctx, `
		SELECT id FROM recompute_jobs
		WHERE status = 'queued'
		ORDER BY queued_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	job, err = scanJob(tx.QueryRow(ctx, `
		UPDATE recompute_jobs SET status = 'running', started_at = now(), attempts = attempts + 1
		WHERE id = $1
		RETURNING `+jobColumns, id))
	if err != nil {
		return job, false, err
	}
	return job, true, nil
}

// StartJob marks a specific queued job as running.
func (db *DB) StartJob(ctx context.Context, jobID string) (ports.RecomputeJob, error) {
	if !validID(jobID) {
		return ports.RecomputeJob{}, ports.ErrNotFound
	}
	j, err := scanJob(db.Pool.QueryRow(ctx, `
		UPDATE recompute_jobs SET status = 'running', started_at = now(), attempts = attempts + 1
		WHERE id = $1 AND status = 'queued'
		RETURNING `+jobColumns, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		if _, lookupErr := db.Job(ctx, jobID); lookupErr != nil {
			return j, lookupErr
		}
		return j, fmt.Errorf("job %s: %w", jobID, ports.ErrJobNotQueued)
	}
	return j, err
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	return db.finish(ctx, jobID, ports.JobCompleted, "")
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return db.finish(ctx, jobID, ports.JobFailed, reason)
}

func (db *DB) finish(ctx context.Context, jobID string, status ports.JobStatus, reason string) error {
	if !validID(jobID) {
		return ports.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE recompute_jobs SET status = $2, error = $3, finished_at = now() WHERE id = $1
	`, jobID, string(status), reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
