// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields extracts single semantic fields from groups of positioned
// fragments. Every extractor is pure and depends on fragment order; a miss is
// reported through the return value, never as an error.
package fields

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// minBoldNameLen is the length, in characters, a bold run must exceed to count
// as part of a skill name. Shorter bold runs are numbering glyphs and rank
// letters.
const minBoldNameLen = 3

var (
	rankPattern   = regexp.MustCompile(`G|H`)
	vaultPattern  = regexp.MustCompile(`[0-9]\.[0-9]`)
	numberPattern = regexp.MustCompile(`([0-9]+)\.`)
)

// Rank returns the first word-bounded "G" or "H" found in a bold run.
func Rank(cell []types.Fragment) (string, bool) {
	for _, f := range cell {
		if !f.IsBold() {
			continue
		}
		if m := findBounded(rankPattern, f.Bold); m != "" {
			return m, true
		}
	}
	return "", false
}

// VaultValue returns the first digit-period-digit run found in a bold run.
// The search is not anchored, so "16.0" yields "6.0".
func VaultValue(cell []types.Fragment) (string, bool) {
	for _, f := range cell {
		if !f.IsBold() {
			continue
		}
		if m := vaultPattern.FindString(f.Bold); m != "" {
			return m, true
		}
	}
	return "", false
}

// Name concatenates the italic runs and the long bold runs of the cell in
// fragment order, italic before bold within a fragment, and trims the result.
func Name(cell []types.Fragment) string {
	var b strings.Builder
	for _, f := range cell {
		if f.IsItalic() {
			b.WriteString(f.Italic)
		}
		if f.IsBold() && utf8.RuneCountInString(f.Bold) > minBoldNameLen {
			b.WriteString(f.Bold)
		}
	}
	return strings.TrimSpace(b.String())
}

// Number returns the integer that precedes the first period in the plain text
// of the first fragment containing one, e.g. 12 for "12. ".
func Number(cell []types.Fragment) types.Optional[int] {
	for _, f := range cell {
		m := numberPattern.FindStringSubmatch(f.Text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return types.None[int]()
		}
		return types.Some(n)
	}
	return types.None[int]()
}

// Image returns the reference of the first image fragment, or "".
func Image(cell []types.Fragment) string {
	for _, f := range cell {
		if f.IsImage() {
			return f.Src
		}
	}
	return ""
}

// findBounded returns the first match of re in s that has no word character
// directly before or after it. RE2's \b only knows ASCII word characters, so
// "ÉG" would otherwise yield "G".
func findBounded(re *regexp.Regexp, s string) string {
	for _, loc := range re.FindAllStringIndex(s, -1) {
		before, _ := utf8.DecodeLastRuneInString(s[:loc[0]])
		after, _ := utf8.DecodeRuneInString(s[loc[1]:])
		if !isWordRune(before) && !isWordRune(after) {
			return s[loc[0]:loc[1]]
		}
	}
	return ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
