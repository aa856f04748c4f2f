// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package skills turns a parsed layout export into a stream of skill records.
// Pages are classified in document order: header pages set the current
// apparatus, content pages are cut into grid cells whose fields are joined
// with the page's element group and the carried apparatus.
package skills

import (
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/pdiddy/cop-skills/internal/grid"
	"github.com/pdiddy/cop-skills/pkg/types"
)

// Summary holds counts from one pass over a document.
type Summary struct {
	Pages   int
	Headers int
	Content int
	Skipped int
	Records int
}

// String renders the summary as a single status line.
func (s Summary) String() string {
	return fmt.Sprintf("pages: %d, headers: %d, content: %d, skipped: %d, records: %d",
		s.Pages, s.Headers, s.Content, s.Skipped, s.Records)
}

// Fprint writes the summary line to w.
func (s Summary) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\nExtraction summary: %s\n", s)
}

// Scanner walks documents with a fixed layout.
type Scanner struct {
	layout  grid.Layout
	logger  *zap.Logger
	summary Summary
}

// NewScanner returns a Scanner for layout. A nil logger discards output.
func NewScanner(layout grid.Layout, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{layout: layout, logger: logger}
}

// Summary returns the counts of the most recent pass.
func (s *Scanner) Summary() Summary {
	return s.summary
}

// Records returns a lazy stream of the document's skill records. Pages are
// read strictly in document order, one page at a time. Each iteration starts
// a fresh pass with an empty context, so ranging twice over the same
// document yields the same sequence.
func (s *Scanner) Records(doc *types.Document) iter.Seq[types.SkillRecord] {
	return func(yield func(types.SkillRecord) bool) {
		s.summary = Summary{}
		var ctx Context

		for _, page := range doc.Pages {
			s.summary.Pages++

			next, cls, records := ctx.Apply(page, s.layout)
			s.observe(page, cls, len(records))
			ctx = next

			for _, rec := range records {
				s.summary.Records++
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// All collects every record of doc.
func (s *Scanner) All(doc *types.Document) []types.SkillRecord {
	var out []types.SkillRecord
	for rec := range s.Records(doc) {
		out = append(out, rec)
	}
	return out
}

func (s *Scanner) observe(page types.Page, cls Classification, n int) {
	switch cls.Kind {
	case PageHeader:
		s.summary.Headers++
		s.logger.Debug("section header",
			zap.Int("page", page.Index),
			zap.String("apparatus", cls.Apparatus))
	case PageContent:
		s.summary.Content++
		s.logger.Debug("content page",
			zap.Int("page", page.Index),
			zap.Int("element_group", cls.ElementGroup.OrZero()),
			zap.Int("records", n))
	default:
		s.summary.Skipped++
		s.logger.Debug("skipped page", zap.Int("page", page.Index))
	}
}
