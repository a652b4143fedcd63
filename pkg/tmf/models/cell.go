// Package models defines the data structures of the reference-model transform.
package models

import (
	"strings"
	"time"
)

// CellKind discriminates the typed cell variants delivered by the reader.
type CellKind int

const (
	// KindText is a plain text cell.
	KindText CellKind = iota
	// KindNumericText is a numeric cell delivered as its display text.
	KindNumericText
	// KindDate is a date-styled cell.
	KindDate
)

// Cell is a single decoded spreadsheet value.
type Cell struct {
	// Kind selects which payload field is meaningful.
	Kind CellKind
	// Text holds the payload for KindText and KindNumericText.
	Text string
	// Date holds the payload for KindDate.
	Date time.Time
}

// Text returns a plain text cell.
func Text(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// NumericText returns a numeric cell carrying its display text.
func NumericText(s string) Cell {
	return Cell{Kind: KindNumericText, Text: s}
}

// Date returns a date cell.
func Date(t time.Time) Cell {
	return Cell{Kind: KindDate, Date: t}
}

// IsEmpty reports whether the cell is blank after trimming.
func (c Cell) IsEmpty() bool {
	return c.Kind != KindDate && strings.TrimSpace(c.Text) == ""
}

// String returns the cell's canonical textual form. Dates render as
// YYYY-MM-DD.
func (c Cell) String() string {
	if c.Kind == KindDate {
		return c.Date.Format(time.DateOnly)
	}
	return c.Text
}
