// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// SQLiteWriter stores records in the skills table of a SQLite database. Each
// run replaces the table contents inside one transaction, committed on Close
// and rolled back on Abort.
type SQLiteWriter struct {
	ctx  context.Context
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
	seq  int
}

// NewSQLiteWriter opens or creates the database at path, creates the schema
// if it does not exist, and starts the replacing transaction.
func NewSQLiteWriter(ctx context.Context, path string) (*SQLiteWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM skills`); err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("clearing skills: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO skills (seq, app, value, eg, number, description, image_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("preparing insert: %w", err)
	}

	return &SQLiteWriter{ctx: ctx, db: db, tx: tx, stmt: stmt}, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS skills (
			seq INTEGER PRIMARY KEY,
			app TEXT NOT NULL,
			value TEXT NOT NULL,
			eg INTEGER,
			number INTEGER,
			description TEXT NOT NULL,
			image_path TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_skills_app ON skills(app)`,
		`CREATE INDEX IF NOT EXISTS idx_skills_eg ON skills(app, eg)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Write inserts one record.
func (s *SQLiteWriter) Write(rec types.SkillRecord) error {
	s.seq++
	_, err := s.stmt.ExecContext(s.ctx, s.seq,
		rec.Apparatus,
		rec.Value,
		nullInt(rec.ElementGroup),
		nullInt(rec.Number),
		rec.Description,
		rec.ImagePath,
	)
	if err != nil {
		return fmt.Errorf("inserting skill %d: %w", s.seq, err)
	}
	return nil
}

// Close commits the run and releases the database.
func (s *SQLiteWriter) Close() error {
	defer s.db.Close()
	s.stmt.Close()
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("committing skills: %w", err)
	}
	return nil
}

// Abort rolls the run back, leaving the previous table contents in place.
func (s *SQLiteWriter) Abort() error {
	defer s.db.Close()
	s.stmt.Close()
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rolling back skills: %w", err)
	}
	return nil
}

// ReadSQLite loads the skills table of the database at path in insertion
// order.
func ReadSQLite(ctx context.Context, path string) ([]types.SkillRecord, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT app, value, eg, number, description, image_path FROM skills ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying skills: %w", err)
	}
	defer rows.Close()

	var out []types.SkillRecord
	for rows.Next() {
		var (
			rec       types.SkillRecord
			eg, numbr sql.NullInt64
		)
		if err := rows.Scan(&rec.Apparatus, &rec.Value, &eg, &numbr, &rec.Description, &rec.ImagePath); err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		rec.ElementGroup = fromNull(eg)
		rec.Number = fromNull(numbr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullInt(o types.Optional[int]) sql.NullInt64 {
	v, ok := o.Get()
	return sql.NullInt64{Int64: int64(v), Valid: ok}
}

func fromNull(n sql.NullInt64) types.Optional[int] {
	if !n.Valid {
		return types.None[int]()
	}
	return types.Some(int(n.Int64))
}
