package parser

import (
	"strings"
	"time"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// versionMarker tags the title-row cell that carries the document version.
const versionMarker = "Version"

// ExtractMetadata reads the document title, version and version date from
// the title row. The version comes from the first cell containing the
// version marker, the version date from the first date-typed cell; either
// may legitimately be absent and stays empty. now supplies the generation
// timestamp so runs are reproducible in tests.
func ExtractMetadata(titleRow []models.Cell, now func() time.Time) models.DocumentMetadata {
	md := models.DocumentMetadata{
		GenerationTimestamp: now().UTC().Format(time.RFC3339),
	}
	if len(titleRow) == 0 {
		return md
	}
	md.Title = strings.TrimSpace(titleRow[0].String())

	versionFound := false
	dateFound := false
	for _, c := range titleRow[1:] {
		if !versionFound && c.Kind != models.KindDate && strings.Contains(c.Text, versionMarker) {
			md.Version = strings.TrimSpace(strings.ReplaceAll(c.Text, versionMarker, ""))
			versionFound = true
		}
		if !dateFound && c.Kind == models.KindDate {
			md.VersionDate = c.Date.Format(time.DateOnly)
			dateFound = true
		}
	}
	return md
}
