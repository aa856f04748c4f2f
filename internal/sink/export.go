// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// YAMLWriter collects records and writes them as a YAML list on Close.
type YAMLWriter struct {
	path string
	rows []types.SkillRow
}

// NewYAMLWriter returns a writer for path. The file is created on Close.
func NewYAMLWriter(path string) *YAMLWriter {
	return &YAMLWriter{path: path, rows: []types.SkillRow{}}
}

// Write buffers one record.
func (y *YAMLWriter) Write(rec types.SkillRecord) error {
	y.rows = append(y.rows, rec.ToRow())
	return nil
}

// Close marshals the buffered records to the output file.
func (y *YAMLWriter) Close() error {
	data, err := yaml.Marshal(y.rows)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(y.path, data, 0o644)
}

// Abort drops the buffered records without touching the output file.
func (y *YAMLWriter) Abort() error {
	y.rows = nil
	return nil
}

// JSONWriter collects records and writes them as an indented JSON array on
// Close.
type JSONWriter struct {
	path string
	rows []types.SkillRow
}

// NewJSONWriter returns a writer for path. The file is created on Close.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path, rows: []types.SkillRow{}}
}

// Write buffers one record.
func (j *JSONWriter) Write(rec types.SkillRecord) error {
	j.rows = append(j.rows, rec.ToRow())
	return nil
}

// Close marshals the buffered records to the output file.
func (j *JSONWriter) Close() error {
	data, err := json.MarshalIndent(j.rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(j.path, append(data, '\n'), 0o644)
}

// Abort drops the buffered records without touching the output file.
func (j *JSONWriter) Abort() error {
	j.rows = nil
	return nil
}
