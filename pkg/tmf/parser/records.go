package parser

import (
	"strings"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// BuildRecord zips a reconciled key sequence with one data row. Compound
// keys split on the first separator occurrence and merge into a nested map
// under their section; bare keys set top-level values directly. Later
// duplicate keys overwrite earlier ones.
func BuildRecord(keys []string, row []models.Cell) (models.Record, error) {
	if len(keys) != len(row) {
		return nil, &RowLengthError{Stage: "record", Want: len(keys), Got: len(row)}
	}
	rec := make(models.Record, len(keys))
	for i, key := range keys {
		value := Normalize(row[i])
		section, leaf, compound := strings.Cut(key, SectionSep)
		if !compound {
			rec[key] = value
			continue
		}
		nested, ok := rec[section].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			rec[section] = nested
		}
		nested[leaf] = value
	}
	return rec, nil
}

// BuildRecords builds one record per data row in source order. When
// skipEmptyKey is set, rows whose first (discriminator) column is empty
// are dropped before building.
func BuildRecords(keys []string, rows [][]models.Cell, skipEmptyKey bool) ([]models.Record, error) {
	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		if skipEmptyKey && (len(row) == 0 || row[0].IsEmpty()) {
			continue
		}
		rec, err := BuildRecord(keys, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
