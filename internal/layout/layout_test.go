// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/cop-skills/pkg/types"
)

const sampleExport = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE pdf2xml SYSTEM "pdf2xml.dtd">
<pdf2xml producer="poppler" version="22.02.0">
<page number="1" position="absolute" top="0" left="0" height="892" width="1263">
	<fontspec id="0" size="12" family="Times" color="#000000"/>
	<text top="100" left="470" width="200" height="15" font="0"><b>SECTION 03: RINGS</b></text>
</page>
<page number="2" position="absolute" top="0" left="0" height="892" width="1263">
	<text top="70" left="30" width="10" height="15" font="0"><b>III</b></text>
	<text top="300" left="420" width="12" height="15" font="0"><b>H</b></text>
	<text top="320" left="420" width="120" height="15" font="0">12. <i>Double Salto</i></text>
	<image top="340" left="430" width="100" height="80" src="rulebook-2_1.png"/>
</page>
</pdf2xml>
`

func TestParse(t *testing.T) {
	doc, err := (&Parser{}).Parse(strings.NewReader(sampleExport), "sample.xml")
	require.NoError(t, err)

	assert.Equal(t, "sample.xml", doc.Source)
	require.Len(t, doc.Pages, 2)

	header := doc.Pages[0]
	assert.Equal(t, 0, header.Index)
	assert.Equal(t, 1, header.Number)
	require.Len(t, header.Fragments, 1, "fontspec is not a fragment")
	assert.Equal(t, "SECTION 03: RINGS", header.Fragments[0].Bold)
	assert.Equal(t, 470.0, header.Fragments[0].Left)
	assert.Equal(t, 100.0, header.Fragments[0].Top)

	content := doc.Pages[1]
	assert.Equal(t, 1, content.Index)
	assert.Equal(t, 2, content.Number)
	require.Len(t, content.Fragments, 4)

	assert.Equal(t, "III", content.Fragments[0].Bold)
	assert.Equal(t, "H", content.Fragments[1].Bold)

	name := content.Fragments[2]
	assert.Equal(t, types.FragmentText, name.Kind)
	assert.Equal(t, "12. ", name.Text)
	assert.Equal(t, "Double Salto", name.Italic)
	assert.False(t, name.IsBold())

	img := content.Fragments[3]
	assert.True(t, img.IsImage())
	assert.Equal(t, "rulebook-2_1.png", img.Src)
}

func TestParseFragmentRuns(t *testing.T) {
	tests := []struct {
		name string
		body string
		want types.Fragment
	}{
		{
			name: "plain text only",
			body: `<text top="1" left="2">15. Kip</text>`,
			want: types.Fragment{Kind: types.FragmentText, Left: 2, Top: 1, Text: "15. Kip"},
		},
		{
			name: "tail text is not plain text",
			body: `<text top="1" left="2"><b>H</b> 7.</text>`,
			want: types.Fragment{Kind: types.FragmentText, Left: 2, Top: 1, Bold: "H", HasBold: true},
		},
		{
			name: "first bold run wins even when blank",
			body: `<text top="1" left="2"><b> </b><b>Giant</b><b>swing</b></text>`,
			want: types.Fragment{Kind: types.FragmentText, Left: 2, Top: 1, Bold: " ", HasBold: true},
		},
		{
			name: "empty bold element carries no run",
			body: `<text top="1" left="2"><b></b><b>Giant</b></text>`,
			want: types.Fragment{Kind: types.FragmentText, Left: 2, Top: 1, Bold: "Giant", HasBold: true},
		},
		{
			name: "whitespace italic run is kept",
			body: `<text top="1" left="2"><i> </i></text>`,
			want: types.Fragment{Kind: types.FragmentText, Left: 2, Top: 1, Italic: " ", HasItalic: true},
		},
		{
			name: "nested italic inside bold is not italic",
			body: `<text top="1" left="2"><b><i>both</i></b></text>`,
			want: types.Fragment{Kind: types.FragmentText, Left: 2, Top: 1},
		},
		{
			name: "html entities decode",
			body: `<text top="1" left="2"><i>Salto&nbsp;bwd</i></text>`,
			want: types.Fragment{Kind: types.FragmentText, Left: 2, Top: 1, Italic: "Salto\u00a0bwd", HasItalic: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := `<pdf2xml><page number="1">` + tt.body + `</page></pdf2xml>`
			doc, err := (&Parser{}).Parse(strings.NewReader(src), "t")
			require.NoError(t, err)
			require.Len(t, doc.Pages, 1)
			require.Len(t, doc.Pages[0].Fragments, 1)
			assert.Equal(t, tt.want, doc.Pages[0].Fragments[0])
		})
	}
}

func TestParseNonNumericCoordinates(t *testing.T) {
	src := `<pdf2xml><page><text top="abc"><b>x</b></text></page></pdf2xml>`
	doc, err := (&Parser{}).Parse(strings.NewReader(src), "t")
	require.NoError(t, err)

	f := doc.Pages[0].Fragments[0]
	assert.True(t, math.IsNaN(f.Top))
	assert.True(t, math.IsNaN(f.Left))
}

func TestParseRecoversDamagedPage(t *testing.T) {
	src := `<pdf2xml>
<page number="1"><text top="1" left="1"><b>one</b></text></page>
<page number="2"><text top="2" left="2"><b>two</b></text><text top=3 left=3><< broken</text></page>
<page number="3"><text top="5" left="5"><i>three</i></text></page>
</pdf2xml>`

	core, logs := observer.New(zap.WarnLevel)
	doc, err := NewParser(zap.New(core)).Parse(strings.NewReader(src), "damaged.xml")
	require.NoError(t, err)

	require.Len(t, doc.Pages, 3, "damage on one page must not drop the others")
	assert.Equal(t, 3, doc.Pages[2].Number)
	require.NotEmpty(t, doc.Pages[1].Fragments)
	assert.Equal(t, "two", doc.Pages[1].Fragments[0].Bold)
	require.Len(t, doc.Pages[2].Fragments, 1)
	assert.Equal(t, "three", doc.Pages[2].Fragments[0].Italic)

	assert.Equal(t, 1, logs.FilterMessage("recovered damaged page").Len())
}

func TestParseUnclosedLastPage(t *testing.T) {
	src := `<pdf2xml><page number="1"><text top="1" left="1"><i>kept</i></text>`
	doc, err := (&Parser{}).Parse(strings.NewReader(src), "t")
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	require.Len(t, doc.Pages[0].Fragments, 1)
	assert.Equal(t, "kept", doc.Pages[0].Fragments[0].Italic)
}

func TestParseLatin1(t *testing.T) {
	src := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<pdf2xml><page><text top=\"1\" left=\"1\"><i>Salto r\xfcckw\xe4rts</i></text></page></pdf2xml>")
	doc, err := (&Parser{}).Parse(strings.NewReader(string(src)), "t")
	require.NoError(t, err)
	assert.Equal(t, "Salto rückwärts", doc.Pages[0].Fragments[0].Italic)
}

func TestParseNoPages(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty input", src: ""},
		{name: "root only", src: `<pdf2xml></pdf2xml>`},
		{name: "similar element name", src: `<pdf2xml><pages/></pdf2xml>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Parser{}).Parse(strings.NewReader(tt.src), "t")
			assert.ErrorIs(t, err, ErrNoPages)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))

	doc, err := (&Parser{}).ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	assert.Len(t, doc.Pages, 2)

	_, err = (&Parser{}).ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}
