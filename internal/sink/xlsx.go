// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/cop-skills/pkg/types"
)

// SheetName is the worksheet that holds the skill table.
const SheetName = "skills"

// XLSXWriter writes records to a single worksheet, header in row 1. Element
// group and number are stored as numeric cells.
type XLSXWriter struct {
	path string
	f    *excelize.File
	row  int
}

// NewXLSXWriter starts a workbook that is saved to path on Close.
func NewXLSXWriter(path string) (*XLSXWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming worksheet: %w", err)
	}

	x := &XLSXWriter{path: path, f: f}
	header := make([]any, len(types.Columns))
	for i, c := range types.Columns {
		header[i] = c
	}
	if err := x.writeRow(header); err != nil {
		f.Close()
		return nil, err
	}
	return x, nil
}

// Write appends one row.
func (x *XLSXWriter) Write(rec types.SkillRecord) error {
	return x.writeRow([]any{
		rec.Apparatus,
		rec.Value,
		optionalCell(rec.ElementGroup),
		optionalCell(rec.Number),
		rec.Description,
		rec.ImagePath,
	})
}

func (x *XLSXWriter) writeRow(values []any) error {
	x.row++
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}
	if err := x.f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", x.row, err)
	}
	return nil
}

// Close saves the workbook.
func (x *XLSXWriter) Close() error {
	defer x.f.Close()
	if err := x.f.SaveAs(x.path); err != nil {
		return fmt.Errorf("saving %s: %w", x.path, err)
	}
	return nil
}

// Abort discards the workbook unsaved.
func (x *XLSXWriter) Abort() error {
	return x.f.Close()
}

func optionalCell(o types.Optional[int]) any {
	if v, ok := o.Get(); ok {
		return v
	}
	return ""
}
