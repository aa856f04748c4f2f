// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grid defines the coordinate bands that carve a rulebook page into
// skill cells and header boxes, and selects the fragments that fall inside
// them.
package grid

import (
	"errors"
	"fmt"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// ErrInvalidLayout is returned by Validate for unusable layouts.
var ErrInvalidLayout = errors.New("invalid grid layout")

// Band is an open interval on one axis. Label names the band in output
// (column letters, row numbers); header bands leave it empty.
type Band struct {
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Low   float64 `json:"low" yaml:"low"`
	High  float64 `json:"high" yaml:"high"`
}

// Contains reports whether v lies strictly between Low and High. Adjacent
// bands share near-boundary coordinates, so a value on the bound belongs to
// neither.
func (b Band) Contains(v float64) bool {
	return b.Low < v && v < b.High
}

// Box is the cross product of a horizontal and a vertical band.
type Box struct {
	X Band `json:"x" yaml:"x"`
	Y Band `json:"y" yaml:"y"`
}

// Contains reports whether the fragment's position is strictly inside the box.
// Fragments with NaN coordinates are never contained.
func (b Box) Contains(f types.Fragment) bool {
	return b.X.Contains(f.Left) && b.Y.Contains(f.Top)
}

// Select returns the page's fragments inside the box, in page order.
func (b Box) Select(page types.Page) []types.Fragment {
	var out []types.Fragment
	for _, f := range page.Fragments {
		if b.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}

// Cell is one grid position of a content page.
type Cell struct {
	Column Band
	Row    Band
}

// Box returns the selection box of the cell.
func (c Cell) Box() Box {
	return Box{X: c.Column, Y: c.Row}
}

// Name returns the cell's coordinates, e.g. "C2".
func (c Cell) Name() string {
	return c.Column.Label + c.Row.Label
}

// Layout is the full geometry of a content page: the skill grid plus the two
// header boxes used to classify pages.
type Layout struct {
	Columns      []Band `json:"columns" yaml:"columns"`
	Rows         []Band `json:"rows" yaml:"rows"`
	ElementGroup Box    `json:"element_group" yaml:"element_group"`
	Apparatus    Box    `json:"apparatus" yaml:"apparatus"`
}

// DefaultLayout returns the coordinates of the men's artistic gymnastics
// Code of Points export.
func DefaultLayout() Layout {
	return Layout{
		Columns: []Band{
			{Label: "A", Low: 10, High: 70},
			{Label: "B", Low: 100, High: 350},
			{Label: "C", Low: 400, High: 550},
			{Label: "D", Low: 600, High: 750},
			{Label: "E", Low: 800, High: 950},
			{Label: "F", Low: 1000, High: 1250},
		},
		Rows: []Band{
			{Label: "1", Low: 90, High: 265},
			{Label: "2", Low: 272, High: 455},
			{Label: "3", Low: 465, High: 647},
			{Label: "4", Low: 657, High: 840},
		},
		ElementGroup: Box{X: Band{Low: 20, High: 44}, Y: Band{Low: 60, High: 90}},
		Apparatus:    Box{X: Band{Low: 450, High: 500}, Y: Band{Low: 90, High: 110}},
	}
}

// Cells returns every grid cell, columns outer and rows inner, in the order
// records are emitted.
func (l Layout) Cells() []Cell {
	cells := make([]Cell, 0, len(l.Columns)*len(l.Rows))
	for _, col := range l.Columns {
		for _, row := range l.Rows {
			cells = append(cells, Cell{Column: col, Row: row})
		}
	}
	return cells
}

// Validate checks that the layout has a grid and that no band is inverted.
func (l Layout) Validate() error {
	if len(l.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidLayout)
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	for _, c := range l.Columns {
		if c.Label == "" {
			return fmt.Errorf("%w: column without label", ErrInvalidLayout)
		}
		if c.Low >= c.High {
			return fmt.Errorf("%w: column %s has low >= high", ErrInvalidLayout, c.Label)
		}
	}
	for i, r := range l.Rows {
		if r.Low >= r.High {
			return fmt.Errorf("%w: row %d has low >= high", ErrInvalidLayout, i+1)
		}
	}
	for name, b := range map[string]Box{"element_group": l.ElementGroup, "apparatus": l.Apparatus} {
		if b.X.Low >= b.X.High || b.Y.Low >= b.Y.High {
			return fmt.Errorf("%w: %s box is empty", ErrInvalidLayout, name)
		}
	}
	return nil
}
