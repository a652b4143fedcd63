package parser

import (
	"strings"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// glossaryHeaderLabels mark residual header rows mixed into the glossary
// data region. Rows whose first column matches are dropped.
var glossaryHeaderLabels = map[string]struct{}{
	"Abbreviation": {},
	"Zone":         {},
	"Item":         {},
}

type glossaryEntry struct {
	term       string
	definition string
}

// ReconcileGlossary folds glossary rows into a term-to-definition mapping.
// A row with an empty term column continues the previous entry: its
// definition text is appended, space-joined, to the most recently
// accumulated definition. A continuation before any entry is a fatal
// precondition violation.
func ReconcileGlossary(rows [][]models.Cell) (map[string]string, error) {
	var entries []glossaryEntry
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		term := strings.TrimSpace(row[0].String())
		if _, echo := glossaryHeaderLabels[term]; echo {
			continue
		}
		if term == "" && len(row) > 1 {
			if len(entries) == 0 {
				return nil, ErrOrphanContinuation
			}
			last := &entries[len(entries)-1]
			last.definition = last.definition + " " + strings.TrimSpace(row[1].String())
			continue
		}
		var definition string
		if len(row) > 1 {
			definition = strings.TrimSpace(row[1].String())
		}
		entries = append(entries, glossaryEntry{term: term, definition: definition})
	}

	glossary := make(map[string]string, len(entries))
	for _, e := range entries {
		glossary[e.term] = e.definition
	}
	return glossary, nil
}
