// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract runs one extraction: parse the layout export, stream its
// skill records and write them to the configured sink.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/cop-skills/internal/grid"
	"github.com/pdiddy/cop-skills/internal/layout"
	"github.com/pdiddy/cop-skills/internal/sink"
	"github.com/pdiddy/cop-skills/internal/skills"
	"github.com/pdiddy/cop-skills/pkg/types"
)

// DefaultOutput is the table written when no output path is configured.
const DefaultOutput = "skills.csv"

// ErrNoInput is returned when the configuration names no export to read.
var ErrNoInput = errors.New("no input export given")

// Resolve fills defaults into cfg. An explicit format names the default
// output file; otherwise the format is inferred from the output extension.
func Resolve(cfg types.ExtractionConfig) (types.ExtractionConfig, error) {
	if cfg.Input == "" {
		return cfg, ErrNoInput
	}

	var err error
	if cfg.Format != "" {
		if cfg.Format, err = sink.ParseFormat(string(cfg.Format)); err != nil {
			return cfg, err
		}
		if cfg.Output == "" {
			cfg.Output = "skills" + sink.Extension(cfg.Format)
		}
		return cfg, nil
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Format, err = sink.FormatFromPath(cfg.Output); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Run extracts the skills of cfg.Input into cfg.Output. Progress lines and
// the final summary are written to w; diagnostics go to logger.
func Run(ctx context.Context, cfg types.ExtractionConfig, logger *zap.Logger, w io.Writer) (skills.Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := Resolve(cfg)
	if err != nil {
		return skills.Summary{}, err
	}

	l, err := grid.LoadLayout(cfg.LayoutFile)
	if err != nil {
		return skills.Summary{}, err
	}

	doc, err := layout.NewParser(logger).ParseFile(cfg.Input)
	if err != nil {
		return skills.Summary{}, err
	}
	fmt.Fprintf(w, "parsed %s (%d pages)\n", cfg.Input, len(doc.Pages))

	out, err := sink.New(ctx, cfg.Format, cfg.Output)
	if err != nil {
		return skills.Summary{}, err
	}

	scanner := skills.NewScanner(l, logger)
	n, err := sink.Drain(ctx, scanner.Records(doc), out)
	if err != nil {
		if abortErr := out.Abort(); abortErr != nil {
			logger.Warn("discarding partial output", zap.String("output", cfg.Output), zap.Error(abortErr))
		}
		return scanner.Summary(), fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	if err := out.Close(); err != nil {
		return scanner.Summary(), fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	logger.Info("extraction finished",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.String("format", string(cfg.Format)),
		zap.Int("records", n))

	fmt.Fprintf(w, "wrote %d records to %s (%s)\n", n, cfg.Output, cfg.Format)
	summary := scanner.Summary()
	summary.Fprint(w)
	return summary, nil
}
