// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// CSVWriter writes a header row followed by one row per record, with "\n"
// line endings. Rows go to a temporary file next to path that replaces path
// on Close.
type CSVWriter struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewCSVWriter starts the table for path and writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	c := &CSVWriter{path: path, f: f, w: csv.NewWriter(f)}
	if err := f.Chmod(0o644); err != nil {
		c.Abort()
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.w.Write(types.Columns); err != nil {
		c.Abort()
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return c, nil
}

// Write appends one row.
func (c *CSVWriter) Write(rec types.SkillRecord) error {
	return c.w.Write(rec.Row())
}

// Close flushes buffered rows and moves the table into place.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.Abort()
		return fmt.Errorf("flushing csv: %w", err)
	}
	if err := c.f.Close(); err != nil {
		os.Remove(c.f.Name())
		return fmt.Errorf("closing csv: %w", err)
	}
	if err := os.Rename(c.f.Name(), c.path); err != nil {
		os.Remove(c.f.Name())
		return fmt.Errorf("replacing %s: %w", c.path, err)
	}
	return nil
}

// Abort drops the rows written so far; an existing table at path is kept.
func (c *CSVWriter) Abort() error {
	c.f.Close()
	return os.Remove(c.f.Name())
}
