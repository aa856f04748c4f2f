// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package skills

import (
	"github.com/pdiddy/cop-skills/internal/fields"
	"github.com/pdiddy/cop-skills/internal/grid"
	"github.com/pdiddy/cop-skills/pkg/types"
)

// Context is the state carried from page to page. An empty Apparatus means no
// section header has been seen yet.
type Context struct {
	Apparatus string
}

// InSection reports whether an apparatus is known.
func (c Context) InSection() bool {
	return c.Apparatus != ""
}

// Apply classifies page and returns the context for the next page together
// with the page's records. Only content pages produce records; only header
// pages change the context.
func (c Context) Apply(page types.Page, layout grid.Layout) (Context, Classification, []types.SkillRecord) {
	cls := Classify(page, layout)
	switch cls.Kind {
	case PageHeader:
		return Context{Apparatus: cls.Apparatus}, cls, nil
	case PageContent:
		return c, cls, AssemblePage(page, layout, c.Apparatus, cls.ElementGroup)
	default:
		return c, cls, nil
	}
}

// AssemblePage extracts the records of a content page, scanning cells in
// layout order.
func AssemblePage(page types.Page, layout grid.Layout, apparatus string, group types.Optional[int]) []types.SkillRecord {
	var records []types.SkillRecord
	for _, cell := range layout.Cells() {
		frags := cell.Box().Select(page)
		rec, ok := AssembleCell(frags, cell)
		if !ok {
			continue
		}
		rec.Apparatus = apparatus
		rec.ElementGroup = group
		records = append(records, rec)
	}
	return records
}

// AssembleCell builds the cell-level fields of a record. It reports false
// when the cell has no name text, which marks an empty grid position.
func AssembleCell(frags []types.Fragment, cell grid.Cell) (types.SkillRecord, bool) {
	name := fields.Name(frags)
	if name == "" {
		return types.SkillRecord{}, false
	}

	return types.SkillRecord{
		Value:       cellValue(frags, cell),
		Number:      fields.Number(frags),
		Description: name,
		ImagePath:   fields.Image(frags),
	}, true
}

// cellValue resolves the difficulty indicator: rank letter, then vault value,
// then the column label. The first hit wins.
func cellValue(frags []types.Fragment, cell grid.Cell) string {
	if v, ok := fields.Rank(frags); ok {
		return v
	}
	if v, ok := fields.VaultValue(frags); ok {
		return v
	}
	return cell.Column.Label
}
