// Package store persists the audit trail: one row per analysis run with its
// provenance, plus the validation findings produced by that run.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

// AuditStore implements the run audit trail using SQLite.
type AuditStore struct {
	db     *sql.DB
	dbPath string
}

// RunRecord is one persisted analysis run.
type RunRecord struct {
	RunID            string            `json:"run_id"`
	Source           string            `json:"source"`
	ScriptVersion    string            `json:"script_version"`
	DatabaseVersions map[string]string `json:"database_versions"`
	StartTime        time.Time         `json:"start_time"`
	EndTime          time.Time         `json:"end_time"`
	ResultHash       string            `json:"result_hash"`
	FailedStages     int               `json:"failed_stages"`
}

// NewAuditStore opens (creating if needed) the audit database at dbPath.
func NewAuditStore(dbPath string) (*AuditStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &AuditStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		source TEXT NOT NULL DEFAULT '',
		script_version TEXT NOT NULL,
		database_versions TEXT NOT NULL DEFAULT '{}',
		start_time DATETIME NOT NULL,
		end_time DATETIME,
		result_hash TEXT NOT NULL DEFAULT '',
		failed_stages INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS findings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(run_id),
		rule_name TEXT NOT NULL,
		status TEXT NOT NULL,
		details TEXT DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_runs_start_time ON runs(start_time);
	CREATE INDEX IF NOT EXISTS idx_findings_run_id ON findings(run_id);
	`

	_, err := db.Exec(schema)
	return err
}

// SaveRun persists the provenance of one run together with its validation
// findings.
func (s *AuditStore) SaveRun(ctx context.Context, record *domain.ProvenanceRecord, source string, findings []domain.ValidationFinding, failedStages int) error {
	versions, err := json.Marshal(record.DatabaseVersions)
	if err != nil {
		return fmt.Errorf("failed to encode database versions: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (
			run_id, source, script_version, database_versions,
			start_time, end_time, result_hash, failed_stages
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.RunID,
		source,
		record.ScriptVersion,
		string(versions),
		record.StartTime,
		record.EndTime,
		record.ResultHash,
		failedStages,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, finding := range findings {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO findings (run_id, rule_name, status, details)
			VALUES (?, ?, ?, ?)
		`, record.RunID, finding.RuleName, string(finding.Status), finding.Details)
		if err != nil {
			return fmt.Errorf("failed to insert finding: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves one run by id. Returns nil when the run does not exist.
func (s *AuditStore) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, source, script_version, database_versions,
			start_time, end_time, result_hash, failed_stages
		FROM runs WHERE run_id = ?
	`, runID)

	record, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	return record, nil
}

// ListRuns returns runs newest first, with pagination.
func (s *AuditStore) ListRuns(ctx context.Context, limit, offset int) ([]*RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, source, script_version, database_versions,
			start_time, end_time, result_hash, failed_stages
		FROM runs
		ORDER BY start_time DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var result []*RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// Findings returns the validation findings persisted for a run.
func (s *AuditStore) Findings(ctx context.Context, runID string) ([]domain.ValidationFinding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rule_name, status, details
		FROM findings
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var findings []domain.ValidationFinding
	for rows.Next() {
		var finding domain.ValidationFinding
		var status string
		if err := rows.Scan(&finding.RuleName, &status, &finding.Details); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		finding.Status = domain.FindingStatus(status)
		findings = append(findings, finding)
	}
	return findings, rows.Err()
}

// Count returns the total number of persisted runs.
func (s *AuditStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}

// Close closes the store and releases resources.
func (s *AuditStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*RunRecord, error) {
	record := &RunRecord{}
	var versions string
	var endTime sql.NullTime

	err := s.Scan(
		&record.RunID, &record.Source, &record.ScriptVersion, &versions,
		&record.StartTime, &endTime, &record.ResultHash, &record.FailedStages,
	)
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		record.EndTime = endTime.Time
	}
	if err := json.Unmarshal([]byte(versions), &record.DatabaseVersions); err != nil {
		return nil, fmt.Errorf("failed to decode database versions: %w", err)
	}
	return record, nil
}
