// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout parses pdftohtml-style XML layout exports into an ordered
// list of pages of positioned fragments.
//
// The parser is tolerant: each page is decoded on its own with a non-strict
// decoder, so a damaged page keeps the fragments read before the damage and
// never affects the pages after it.
package layout

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// ErrNoPages is returned when a document contains no <page> element. It is
// the only structural failure that aborts a run.
var ErrNoPages = errors.New("document has no pages")

const (
	elemPage   = "page"
	elemText   = "text"
	elemImage  = "image"
	elemBold   = "b"
	elemItalic = "i"
)

var encodingDecl = regexp.MustCompile(`^\s*<\?xml[^>]*encoding=["']([A-Za-z0-9._-]+)["']`)

// Parser decodes layout exports. The zero value is usable and discards
// warnings.
type Parser struct {
	Logger *zap.Logger
}

// NewParser returns a Parser that reports recovered damage to logger.
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{Logger: logger}
}

func (p *Parser) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// ParseFile reads and parses the export at path.
func (p *Parser) ParseFile(path string) (*types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening layout export %s: %w", path, err)
	}
	defer f.Close()

	return p.Parse(f, path)
}

// Parse reads a layout export from r. Pages keep their document order.
func (p *Parser) Parse(r io.Reader, source string) (*types.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading layout export %s: %w", source, err)
	}

	data, err = toUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("decoding layout export %s: %w", source, err)
	}

	chunks := splitPages(data)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoPages)
	}

	doc := &types.Document{Source: source, Pages: make([]types.Page, 0, len(chunks))}
	for i, chunk := range chunks {
		page, err := decodePage(chunk)
		page.Index = i
		if err != nil {
			p.logger().Warn("recovered damaged page",
				zap.String("source", source),
				zap.Int("page", i),
				zap.Int("fragments_kept", len(page.Fragments)),
				zap.Error(err))
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// toUTF8 converts data to UTF-8 according to its XML declaration.
func toUTF8(data []byte) ([]byte, error) {
	m := encodingDecl.FindSubmatch(data)
	if m == nil {
		return data, nil
	}
	label := strings.ToLower(string(m[1]))
	if label == "utf-8" || label == "utf8" {
		return data, nil
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// splitPages cuts data at every <page start tag. Each chunk runs up to the
// next page, so trailing markup after a page is ignored by decodePage.
func splitPages(data []byte) [][]byte {
	var starts []int
	for off := 0; off < len(data); {
		i := bytes.Index(data[off:], []byte("<"+elemPage))
		if i < 0 {
			break
		}
		pos := off + i
		next := pos + len(elemPage) + 1
		if next < len(data) && isTagBoundary(data[next]) {
			starts = append(starts, pos)
		}
		off = next
	}

	chunks := make([][]byte, 0, len(starts))
	for i, start := range starts {
		end := len(data)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

func isTagBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '>', '/':
		return true
	}
	return false
}

// decodePage decodes one page chunk. On a syntax error it returns what was
// read so far together with the error.
func decodePage(chunk []byte) (types.Page, error) {
	dec := xml.NewDecoder(bytes.NewReader(chunk))
	dec.Strict = false
	dec.AutoClose = []string{"fontspec"}
	dec.Entity = xml.HTMLEntity

	var (
		page     types.Page
		frag     *types.Fragment
		hasChild bool
		run      string
		depth    int
	)

	flush := func() {
		if frag != nil {
			page.Fragments = append(page.Fragments, *frag)
			frag = nil
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			flush()
			if err == io.EOF {
				return page, nil
			}
			return page, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				page.Number = atoi(attr(t, "number"))
			case 2:
				frag = newFragment(t)
				hasChild = false
			case 3:
				hasChild = true
				run = t.Name.Local
			}

		case xml.EndElement:
			switch depth {
			case 3:
				run = ""
			case 2:
				flush()
			}
			depth--
			if depth == 0 {
				flush()
				return page, nil
			}

		case xml.CharData:
			if frag == nil || len(t) == 0 {
				continue
			}
			s := string(t)
			// Runs are kept verbatim, whitespace included; only the first
			// text node of each kind is recorded.
			switch {
			case depth == 2 && !hasChild && frag.Text == "":
				if strings.TrimSpace(s) != "" {
					frag.Text = s
				}
			case depth == 3 && run == elemBold && !frag.HasBold:
				frag.Bold, frag.HasBold = s, true
			case depth == 3 && run == elemItalic && !frag.HasItalic:
				frag.Italic, frag.HasItalic = s, true
			}
		}
	}
}

// newFragment returns a fragment for text and image elements and nil for
// anything else on the page (fontspec, outline markers).
func newFragment(t xml.StartElement) *types.Fragment {
	f := &types.Fragment{
		Left: coord(attr(t, "left")),
		Top:  coord(attr(t, "top")),
	}
	switch t.Name.Local {
	case elemText:
		f.Kind = types.FragmentText
	case elemImage:
		f.Kind = types.FragmentImage
		f.Src = attr(t, "src")
	default:
		return nil
	}
	return f
}

func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// coord parses a coordinate attribute. Unparsable values become NaN, which
// no band contains.
func coord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
