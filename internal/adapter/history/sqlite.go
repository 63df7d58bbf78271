// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package history keeps one row per analysis run in a SQLite database under
// the workspace directory of the analyzed root.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

const dbFileName = "history.db"

// Fixed width keeps lexical order equal to chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const DefaultLimit = 20

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id                 TEXT PRIMARY KEY,
		root_path          TEXT NOT NULL,
		generated_at       TEXT NOT NULL,
		files              INTEGER NOT NULL,
		functions          INTEGER NOT NULL,
		max_complexity     INTEGER NOT NULL,
		avg_complexity     REAL NOT NULL,
		non_camel_case_pct REAL NOT NULL,
		warnings           INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_generated_at ON runs(generated_at)`,
}

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
}

type SQLiteStore struct{}

func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)

func DBPath(root string) string {
	return filepath.Join(root, model.WorkspaceDir, dbFileName)
}

func open(ctx context.Context, root string) (*sql.DB, error) {
	dir := filepath.Join(root, model.WorkspaceDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	conn, err := sql.Open("sqlite", DBPath(root))
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	for _, stmt := range append(append([]string{}, pragmas...), schema...) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("initialize history database: %w", err)
		}
	}
	return conn, nil
}

func (s *SQLiteStore) Record(ctx context.Context, root string, run model.RunRecord) error {
	conn, err := open(ctx, root)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, `
		INSERT INTO runs (id, root_path, generated_at, files, functions,
			max_complexity, avg_complexity, non_camel_case_pct, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.RootPath,
		run.GeneratedAt.UTC().Format(timeLayout),
		run.Files,
		run.Functions,
		run.MaxComplexity,
		run.AvgComplexity,
		run.NonCamelCasePct,
		run.Warnings,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs first. A non-positive limit means
// DefaultLimit.
func (s *SQLiteStore) List(ctx context.Context, root string, limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if _, err := os.Stat(DBPath(root)); os.IsNotExist(err) {
		return nil, nil
	}

	conn, err := open(ctx, root)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT id, root_path, generated_at, files, functions,
			max_complexity, avg_complexity, non_camel_case_pct, warnings
		FROM runs
		ORDER BY generated_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []model.RunRecord
	for rows.Next() {
		var (
			r  model.RunRecord
			at string
		)
		if err := rows.Scan(&r.ID, &r.RootPath, &at, &r.Files, &r.Functions,
			&r.MaxComplexity, &r.AvgComplexity, &r.NonCamelCasePct, &r.Warnings); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.GeneratedAt, err = time.Parse(timeLayout, at)
		if err != nil {
			return nil, fmt.Errorf("parse run time %q: %w", at, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
