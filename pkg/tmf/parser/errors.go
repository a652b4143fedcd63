package parser

import (
	"errors"
	"fmt"
)

// ErrOrphanContinuation indicates a glossary continuation row with no
// preceding entry to attach to.
var ErrOrphanContinuation = errors.New("glossary continuation row with no preceding entry")

// RowLengthError reports a row whose cell count does not match the
// reconciled header width.
type RowLengthError struct {
	// Stage is the scan that hit the mismatch ("headers" or "record").
	Stage string
	Want  int
	Got   int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("%s: row has %d cells, want %d", e.Stage, e.Got, e.Want)
}
