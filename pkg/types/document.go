// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FragmentKind distinguishes text fragments from embedded images.
type FragmentKind string

const (
	FragmentText  FragmentKind = "text"
	FragmentImage FragmentKind = "image"
)

// Fragment is one positioned element of a page. Text fragments carry plain
// text and optional bold/italic runs; image fragments carry a reference.
type Fragment struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind FragmentKind `json:"kind" yaml:"kind"`

	// Left and Top are the absolute page coordinates of the fragment. They are
	// NaN when the source attribute is missing or not numeric.
	Left float64 `json:"left" yaml:"left"`
	Top  float64 `json:"top" yaml:"top"`

	// Text is the plain character data that precedes the first formatting run.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Bold is the text of the first bold run, kept as-is. A run holding only
	// whitespace still counts; HasBold records that a run was seen.
	Bold    string `json:"bold,omitempty" yaml:"bold,omitempty"`
	HasBold bool   `json:"has_bold,omitempty" yaml:"has_bold,omitempty"`

	// Italic is the text of the first italic run, kept as-is.
	Italic    string `json:"italic,omitempty" yaml:"italic,omitempty"`
	HasItalic bool   `json:"has_italic,omitempty" yaml:"has_italic,omitempty"`

	// Src is the image reference for image fragments.
	Src string `json:"src,omitempty" yaml:"src,omitempty"`
}

// IsBold reports whether the fragment carries a bold run.
func (f Fragment) IsBold() bool {
	return f.HasBold
}

// IsItalic reports whether the fragment carries an italic run.
func (f Fragment) IsItalic() bool {
	return f.HasItalic
}

// WithBold returns a copy of f carrying s as its bold run.
func (f Fragment) WithBold(s string) Fragment {
	f.Bold, f.HasBold = s, true
	return f
}

// WithItalic returns a copy of f carrying s as its italic run.
func (f Fragment) WithItalic(s string) Fragment {
	f.Italic, f.HasItalic = s, true
	return f
}

// IsImage reports whether the fragment is an embedded image.
func (f Fragment) IsImage() bool {
	return f.Kind == FragmentImage
}

// Page is an ordered set of fragments sharing one page of the source.
type Page struct {
	// Index is the zero-based position of the page in the document.
	Index int `json:"index" yaml:"index"`

	// Number is the page number printed by the exporter, or 0 if absent.
	Number int `json:"number" yaml:"number"`

	// Fragments lists the page's text and image fragments in document order.
	Fragments []Fragment `json:"fragments" yaml:"fragments"`
}

// Document is a parsed layout export. Page order is significant.
type Document struct {
	// Source is the path the document was read from, if any.
	Source string `json:"source" yaml:"source"`

	// Pages holds the pages in document order.
	Pages []Page `json:"pages" yaml:"pages"`
}
