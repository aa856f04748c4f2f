// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SinkFormat selects the serialization of the skill table.
type SinkFormat string

const (
	FormatCSV    SinkFormat = "csv"
	FormatYAML   SinkFormat = "yaml"
	FormatJSON   SinkFormat = "json"
	FormatXLSX   SinkFormat = "xlsx"
	FormatSQLite SinkFormat = "sqlite"
)

// SinkFormats lists the supported output formats.
var SinkFormats = []SinkFormat{FormatCSV, FormatYAML, FormatJSON, FormatXLSX, FormatSQLite}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Development switches to human-readable console output.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// ExtractionConfig holds the resolved settings of one extraction run.
type ExtractionConfig struct {
	// Input is the path of the layout XML export.
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the path of the skill table (default "skills.csv").
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Format selects the table serialization. Empty infers it from Output.
	Format SinkFormat `json:"format" yaml:"format" mapstructure:"format"`

	// LayoutFile optionally points at a YAML grid layout replacing the
	// built-in rulebook coordinates.
	LayoutFile string `json:"layout" yaml:"layout" mapstructure:"layout"`

	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}
