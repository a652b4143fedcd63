// Package reader decodes reference-model workbooks into typed cell rows.
package reader

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// Workbook wraps an open spreadsheet file.
type Workbook struct {
	f *excelize.File
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Rows returns the named sheet's rows as typed cells. Rows with no content
// are dropped, and every remaining row is padded to the sheet's full width
// so downstream column zips see aligned rows.
func (w *Workbook) Rows(sheet string) ([][]models.Cell, error) {
	raw, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	width := 0
	for _, row := range raw {
		if len(row) > width {
			width = len(row)
		}
	}

	var rows [][]models.Cell
	for _, row := range raw {
		cells := make([]models.Cell, width)
		hasData := false
		for col := 0; col < width; col++ {
			var value string
			if col < len(row) {
				value = row[col]
			}
			cells[col] = typedCell(value)
			if !cells[col].IsEmpty() {
				hasData = true
			}
		}
		if hasData {
			rows = append(rows, cells)
		}
	}
	return rows, nil
}

// dateLayouts cover the display formats the reference workbooks use for
// date-styled cells.
var dateLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	"02-Jan-06",
	"January 2, 2006",
}

// typedCell classifies a formatted cell value as text, numeric text or
// date. Classification works on the display text: excelize already applies
// the cell's number format before we see the value.
func typedCell(value string) models.Cell {
	if value == "" {
		return models.Text("")
	}
	if t, ok := parseDate(value); ok {
		return models.Date(t)
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return models.NumericText(value)
	}
	return models.Text(value)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
