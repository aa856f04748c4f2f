// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink serializes skill records to tabular storage. Every format uses
// the column order in types.Columns.
package sink

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Writer receives records in order. Close must be called to commit output;
// records are not guaranteed to be on disk before it returns. Abort releases
// the writer instead and leaves any previous output at the path untouched
// where the format allows it.
type Writer interface {
	Write(rec types.SkillRecord) error
	Close() error
	Abort() error
}

// ParseFormat validates a format name.
func ParseFormat(s string) (types.SinkFormat, error) {
	f := types.SinkFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range types.SinkFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q: use csv, yaml, json, xlsx, or sqlite", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from the file extension of path.
func FormatFromPath(path string) (types.SinkFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return types.FormatCSV, nil
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	case ".json":
		return types.FormatJSON, nil
	case ".xlsx":
		return types.FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return types.FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: cannot infer from %q", ErrUnknownFormat, path)
}

// Extension returns the file extension written for format, including the dot.
func Extension(format types.SinkFormat) string {
	if format == types.FormatSQLite {
		return ".db"
	}
	return "." + string(format)
}

// New opens a writer for format at path.
func New(ctx context.Context, format types.SinkFormat, path string) (Writer, error) {
	switch format {
	case types.FormatCSV:
		return NewCSVWriter(path)
	case types.FormatYAML:
		return NewYAMLWriter(path), nil
	case types.FormatJSON:
		return NewJSONWriter(path), nil
	case types.FormatXLSX:
		return NewXLSXWriter(path)
	case types.FormatSQLite:
		return NewSQLiteWriter(ctx, path)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// Drain copies every record of seq into w and returns the count written. It
// stops between records when ctx is cancelled. Drain does not close w.
func Drain(ctx context.Context, seq iter.Seq[types.SkillRecord], w Writer) (int, error) {
	n := 0
	for rec := range seq {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		if err := w.Write(rec); err != nil {
			return n, fmt.Errorf("writing record %d: %w", n+1, err)
		}
		n++
	}
	return n, nil
}
