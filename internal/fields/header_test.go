// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/cop-skills/internal/grid"
	"github.com/pdiddy/cop-skills/pkg/types"
)

func TestParseElementGroup(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{text: "ELEMENT GROUP III", want: 3, wantOK: true},
		{text: "I", want: 1, wantOK: true},
		{text: "IV.", want: 4, wantOK: true},
		{text: "V", want: 5, wantOK: true},
		{text: "VI"},
		{text: "ELEMENT GROUP"},
		{text: ""},
		{text: "iii"},
		{text: "ÉII"},
		{text: "II_"},
		{text: "GROUP\u00a0II", want: 2, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseElementGroup(tt.text).Get()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseApparatus(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "Code of Points section 03: Floor Exercise page 1", want: "Floor Exercise", wantOK: true},
		{text: "SECTION 04: RINGS", want: "RINGS", wantOK: true},
		{text: "section 07:   parallel bars", want: "parallel bars", wantOK: true},
		{text: "Section 08: Horizontal Bar", want: "Horizontal Bar", wantOK: true},
		{text: "section 3: rings"},
		{text: "section 03: balance beam"},
		{text: "rings"},
		{text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseApparatus(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaderBoxes(t *testing.T) {
	l := grid.DefaultLayout()

	page := types.Page{Fragments: []types.Fragment{
		{Kind: types.FragmentText, Left: 30, Top: 70, Text: "group"},
		types.Fragment{Kind: types.FragmentText, Left: 30, Top: 75}.WithBold("II"),
		types.Fragment{Kind: types.FragmentText, Left: 470, Top: 100}.WithBold("section 05: vault"),
	}}

	eg, ok := ElementGroup(page, l.ElementGroup).Get()
	assert.True(t, ok)
	assert.Equal(t, 2, eg)

	app, ok := Apparatus(page, l.Apparatus)
	assert.True(t, ok)
	assert.Equal(t, "vault", app)

	t.Run("empty boxes", func(t *testing.T) {
		assert.False(t, ElementGroup(types.Page{}, l.ElementGroup).Present())
		_, ok := Apparatus(types.Page{}, l.Apparatus)
		assert.False(t, ok)
	})

	t.Run("header outside box is ignored", func(t *testing.T) {
		p := types.Page{Fragments: []types.Fragment{
			types.Fragment{Kind: types.FragmentText, Left: 44, Top: 70}.WithBold("III"),
		}}
		assert.False(t, ElementGroup(p, l.ElementGroup).Present())
	})
}
