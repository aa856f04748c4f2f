// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package skills

import (
	"github.com/pdiddy/cop-skills/internal/fields"
	"github.com/pdiddy/cop-skills/internal/grid"
	"github.com/pdiddy/cop-skills/pkg/types"
)

// PageKind is the role a page plays in the skill stream.
type PageKind string

const (
	// PageSkipped pages carry neither header and produce nothing.
	PageSkipped PageKind = "skipped"
	// PageHeader pages announce a new apparatus section.
	PageHeader PageKind = "header"
	// PageContent pages hold a skill grid under an element-group header.
	PageContent PageKind = "content"
)

// Classification is the result of reading a page's two header boxes.
type Classification struct {
	Kind         PageKind
	ElementGroup types.Optional[int]
	Apparatus    string
}

// Classify reads the element-group and apparatus boxes of page. An apparatus
// header takes precedence over an element group on the same page.
func Classify(page types.Page, layout grid.Layout) Classification {
	c := Classification{ElementGroup: fields.ElementGroup(page, layout.ElementGroup)}

	if app, ok := fields.Apparatus(page, layout.Apparatus); ok {
		c.Kind = PageHeader
		c.Apparatus = app
		return c
	}
	if c.ElementGroup.Present() {
		c.Kind = PageContent
		return c
	}
	c.Kind = PageSkipped
	return c
}
