package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vitkovskyi/commitgate/internal/core"
)

// Store defines the database operations for review history.
type Store interface {
	SaveRun(ctx context.Context, run core.Run, verdicts []core.Verdict) error
	ListRuns(ctx context.Context, limit int) ([]core.Run, error)
}

type sqliteStore struct {
	db *sqlx.DB
}

// NewStore creates a Store backed by the given database handle.
func NewStore(db *sqlx.DB) Store {
	return &sqliteStore{db: db}
}

// SaveRun persists a run and its verdicts in one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, run core.Run, verdicts []core.Verdict) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, mode, files, rejected, exit_code, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Mode, run.Files, run.Rejected, run.ExitCode, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, v := range verdicts {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO verdicts (run_id, paths, decision, score, critical, source, review) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, strings.Join(v.Paths, ";"), string(v.Decision), v.Score, boolToInt(v.Critical), string(v.Source), v.Review)
		if err != nil {
			return fmt.Errorf("failed to insert verdict: %w", err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]core.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []core.Run
	err := s.db.SelectContext(ctx, &runs,
		`SELECT id, mode, files, rejected, exit_code, created_at FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
