package parser

import (
	"strings"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// SectionSep joins a section label with a leaf label in a compound key.
// It does not occur in source labels.
const SectionSep = " : "

// ReconcileHeaders merges the section row and the leaf-label row into one
// ordered key sequence of the same length. In the source document a
// section label appears once and spans following columns as merged cells,
// which decode as blanks; the scan carries the most recently named section
// so those blank columns resolve to compound keys.
func ReconcileHeaders(rowA, rowB []models.Cell) ([]string, error) {
	if len(rowA) != len(rowB) {
		return nil, &RowLengthError{Stage: "headers", Want: len(rowA), Got: len(rowB)}
	}
	keys := make([]string, 0, len(rowB))
	section := ""
	for i := range rowB {
		a := cleanLabel(rowA[i])
		b := cleanLabel(rowB[i])
		switch {
		case b == "":
			keys = append(keys, a)
			section = ""
		case a == "" && section == "":
			keys = append(keys, b)
		case a == "":
			keys = append(keys, section+SectionSep+b)
		default:
			keys = append(keys, a+SectionSep+b)
			section = a
		}
	}
	return keys, nil
}

// cleanLabel collapses embedded line breaks to single spaces and trims.
func cleanLabel(c models.Cell) string {
	s := c.String()
	s = strings.ReplaceAll(s, lineBreak, " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
