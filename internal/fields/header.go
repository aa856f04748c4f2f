// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"regexp"
	"strings"

	"github.com/pdiddy/cop-skills/internal/grid"
	"github.com/pdiddy/cop-skills/pkg/types"
)

var (
	romanPattern     = regexp.MustCompile(`[MDCLXVI]+`)
	apparatusPattern = regexp.MustCompile(`(?i)section\s[0-9][0-9]:\s*(floor exercise|pommel horse|rings|vault|parallel bars|horizontal bar)`)
)

// elementGroups maps the numerals printed in the group header.
var elementGroups = map[string]int{
	"I":   1,
	"II":  2,
	"III": 3,
	"IV":  4,
	"V":   5,
}

// headerText returns the first bold run among the fragments inside box.
func headerText(page types.Page, box grid.Box) (string, bool) {
	for _, f := range box.Select(page) {
		if f.IsBold() {
			return f.Bold, true
		}
	}
	return "", false
}

// ElementGroup decodes the roman numeral in the page's element-group header.
// Missing headers, missing numerals and numerals outside I-V are all absent.
func ElementGroup(page types.Page, box grid.Box) types.Optional[int] {
	text, ok := headerText(page, box)
	if !ok {
		return types.None[int]()
	}
	return ParseElementGroup(text)
}

// ParseElementGroup decodes the first standalone roman numeral in text.
func ParseElementGroup(text string) types.Optional[int] {
	numeral := findBounded(romanPattern, text)
	if g, ok := elementGroups[numeral]; ok {
		return types.Some(g)
	}
	return types.None[int]()
}

// Apparatus returns the event named in the page's section header.
func Apparatus(page types.Page, box grid.Box) (string, bool) {
	text, ok := headerText(page, box)
	if !ok {
		return "", false
	}
	return ParseApparatus(text)
}

// ParseApparatus finds "section NN: <event>" in text, case-insensitively, and
// returns the event name as printed.
func ParseApparatus(text string) (string, bool) {
	m := apparatusPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	return name, name != ""
}
