// Package catalog is the offence reference-data store backing the API: the
// offence catalog and the per-offence sentencing matrix, kept in SQLite. The
// calculation engine never touches it; callers fetch records here first.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"sentence-engine/internal/model"
)

// Store wraps the SQLite connection.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if needed) the catalog database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("catalog: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite does not benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the catalog schema if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS offence_catalog (
			offence_id              TEXT PRIMARY KEY,
			canonical_name          TEXT NOT NULL,
			short_name              TEXT NOT NULL DEFAULT '',
			offence_category        TEXT NOT NULL DEFAULT '',
			provision               TEXT NOT NULL DEFAULT '',
			guideline_url           TEXT NOT NULL DEFAULT '',
			legislation_url         TEXT NOT NULL DEFAULT '',
			maximum_sentence_type   TEXT NOT NULL DEFAULT '',
			maximum_sentence_amount TEXT NOT NULL DEFAULT '',
			minimum_sentence_code   TEXT NOT NULL DEFAULT '',
			specified_violent       INTEGER NOT NULL DEFAULT 0,
			specified_sexual        INTEGER NOT NULL DEFAULT 0,
			specified_terrorist     INTEGER NOT NULL DEFAULT 0,
			listed_offence          INTEGER NOT NULL DEFAULT 0,
			schedule18a_offence     INTEGER NOT NULL DEFAULT 0,
			schedule19za            INTEGER NOT NULL DEFAULT 0,
			cta_notification        INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS sentencing_matrix (
			matrix_id           INTEGER PRIMARY KEY AUTOINCREMENT,
			offence_id          TEXT NOT NULL REFERENCES offence_catalog(offence_id),
			culpability         TEXT NOT NULL DEFAULT '',
			harm                TEXT NOT NULL DEFAULT '',
			starting_point_text TEXT NOT NULL DEFAULT '',
			category_range_text TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentencing_matrix_offence ON sentencing_matrix(offence_id)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

const offenceColumns = `offence_id, canonical_name, short_name, offence_category, provision,
	guideline_url, legislation_url, maximum_sentence_type, maximum_sentence_amount,
	minimum_sentence_code, specified_violent, specified_sexual, specified_terrorist,
	listed_offence, schedule18a_offence, schedule19za, cta_notification`

// FetchOffenceByID returns the offence with the given id, or nil when absent.
func (s *Store) FetchOffenceByID(ctx context.Context, offenceID string) (*model.OffenceRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+offenceColumns+` FROM offence_catalog WHERE offence_id = ?`, offenceID)

	offence, err := scanOffence(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offence %s: %w", offenceID, err)
	}
	return offence, nil
}

// SearchOffences ranks offences against the query over canonical name, short
// name and provision. Canonical-name hits rank above short-name hits, which
// rank above provision hits.
func (s *Store) SearchOffences(ctx context.Context, query string, limit int) ([]model.OffenceRecord, error) {
	if limit <= 0 {
		limit = 5
	}
	pattern := "%" + query + "%"

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+offenceColumns+`,
			(CASE WHEN canonical_name LIKE ? THEN 4 ELSE 0 END
			 + CASE WHEN short_name LIKE ? THEN 2 ELSE 0 END
			 + CASE WHEN provision LIKE ? THEN 1 ELSE 0 END) AS score
		 FROM offence_catalog
		 WHERE canonical_name LIKE ? OR short_name LIKE ? OR provision LIKE ?
		 ORDER BY score DESC, canonical_name ASC
		 LIMIT ?`,
		pattern, pattern, pattern, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search offences: %w", err)
	}
	defer rows.Close()

	var results []model.OffenceRecord
	for rows.Next() {
		var o model.OffenceRecord
		var score int
		if err := rows.Scan(
			&o.OffenceID, &o.CanonicalName, &o.ShortName, &o.OffenceCategory, &o.Provision,
			&o.GuidelineURL, &o.LegislationURL, &o.MaximumSentenceType, &o.MaximumSentenceAmount,
			&o.MinimumSentenceCode, &o.SpecifiedViolent, &o.SpecifiedSexual, &o.SpecifiedTerrorist,
			&o.ListedOffence, &o.Schedule18AOffence, &o.Schedule19ZA, &o.CTANotification,
			&score,
		); err != nil {
			return nil, fmt.Errorf("failed to scan offence row: %w", err)
		}
		results = append(results, o)
	}
	return results, rows.Err()
}

// FetchSentencingMatrix returns the culpability/harm rows linked to the
// offence, in insertion order.
func (s *Store) FetchSentencingMatrix(ctx context.Context, offenceID string) ([]model.SentencingMatrixRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT culpability, harm, starting_point_text, category_range_text
		 FROM sentencing_matrix WHERE offence_id = ? ORDER BY matrix_id`, offenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sentencing matrix for %s: %w", offenceID, err)
	}
	defer rows.Close()

	var matrix []model.SentencingMatrixRow
	for rows.Next() {
		var r model.SentencingMatrixRow
		if err := rows.Scan(&r.Culpability, &r.Harm, &r.StartingPointText, &r.CategoryRangeText); err != nil {
			return nil, fmt.Errorf("failed to scan matrix row: %w", err)
		}
		matrix = append(matrix, r)
	}
	return matrix, rows.Err()
}

type offenceScanner interface {
	Scan(dest ...any) error
}

func scanOffence(row offenceScanner) (*model.OffenceRecord, error) {
	var o model.OffenceRecord
	err := row.Scan(
		&o.OffenceID, &o.CanonicalName, &o.ShortName, &o.OffenceCategory, &o.Provision,
		&o.GuidelineURL, &o.LegislationURL, &o.MaximumSentenceType, &o.MaximumSentenceAmount,
		&o.MinimumSentenceCode, &o.SpecifiedViolent, &o.SpecifiedSexual, &o.SpecifiedTerrorist,
		&o.ListedOffence, &o.Schedule18AOffence, &o.Schedule19ZA, &o.CTANotification,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
