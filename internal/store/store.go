// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives classification runs in a SQLite database and
// supports querying past results without re-running the pipeline.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "papers.db"
)

// Store manages the run archive SQLite database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the archive database at
// dataDir/index/papers.db, creating the schema if needed.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dataDir:    cfg.DataDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			created_at TEXT NOT NULL,
			found INTEGER,
			relevant INTEGER,
			excluded INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			pmid TEXT NOT NULL,
			run_id TEXT NOT NULL REFERENCES runs(id),
			title TEXT,
			pub_date TEXT,
			authors TEXT,
			companies TEXT,
			email TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_run_id ON papers(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_pmid ON papers(pmid)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over title and companies, with sync triggers.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='papers_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE papers_fts USING fts5(title, companies, content=papers, content_rowid=rowid)`,
			`CREATE TRIGGER papers_ai AFTER INSERT ON papers BEGIN
				INSERT INTO papers_fts(rowid, title, companies) VALUES (new.rowid, new.title, new.companies);
			END`,
			`CREATE TRIGGER papers_ad AFTER DELETE ON papers BEGIN
				INSERT INTO papers_fts(papers_fts, rowid, title, companies) VALUES('delete', old.rowid, old.title, old.companies);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// RunInfo summarizes one archived run.
type RunInfo struct {
	ID        string    `json:"id" yaml:"id"`
	Query     string    `json:"query" yaml:"query"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Found     int       `json:"found" yaml:"found"`
	Relevant  int       `json:"relevant" yaml:"relevant"`
	Excluded  int       `json:"excluded" yaml:"excluded"`
}

// SaveRun archives one pipeline run and its papers in a single
// transaction and returns the new run's identifier.
func (s *Store) SaveRun(ctx context.Context, query string, found, excluded int, papers []types.ClassifiedPaper) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, query, created_at, found, relevant, excluded)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, query, time.Now().UTC().Format(time.RFC3339), found, len(papers), excluded,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (pmid, run_id, title, pub_date, authors, companies, email)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		authorsJSON, _ := json.Marshal(p.NonAcademicAuthors)
		companiesJSON, _ := json.Marshal(p.CompanyAffiliations)
		_, err := stmt.ExecContext(ctx,
			p.PubmedID, runID, p.Title, p.PublicationDate,
			string(authorsJSON), string(companiesJSON), p.CorrespondingEmail,
		)
		if err != nil {
			return "", fmt.Errorf("inserting paper %s: %w", p.PubmedID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns summaries of all archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, created_at, found, relevant, excluded
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var (
			ri      RunInfo
			created string
		)
		if err := rows.Scan(&ri.ID, &ri.Query, &created, &ri.Found, &ri.Relevant, &ri.Excluded); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, created); perr == nil {
			ri.CreatedAt = t
		}
		runs = append(runs, ri)
	}
	return runs, rows.Err()
}
