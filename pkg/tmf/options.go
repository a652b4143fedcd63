// Package tmf turns a reference-model workbook into its normalized JSON
// form: reconciled records from the primary sheet plus the glossary
// mapping.
package tmf

import (
	"time"

	"go.uber.org/zap"
)

// Default sheet names in the reference-model workbook.
const (
	DefaultModelSheet    = "TMF RM"
	DefaultGlossarySheet = "Glossary"
)

// Options configures a transform run.
type Options struct {
	// ModelSheet is the primary sheet: a title row, two header rows, then
	// data rows.
	ModelSheet string
	// GlossarySheet is the two-column abbreviation sheet.
	GlossarySheet string
	// SkipEmptyKey controls dropping data rows whose first column is
	// empty. If nil, defaults to true.
	SkipEmptyKey *bool
	// Embeddings enables vector generation for each record.
	Embeddings bool
	// APIKey is the embeddings credential, usually sourced from the
	// OPENAI_API_KEY environment variable by the caller.
	APIKey string
	// Clock supplies the generation timestamp. If nil, time.Now is used.
	Clock func() time.Time
	// Logger receives run progress. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns options for the standard reference workbook.
func DefaultOptions() Options {
	return Options{
		ModelSheet:    DefaultModelSheet,
		GlossarySheet: DefaultGlossarySheet,
	}
}

// ShouldSkipEmptyKey returns whether rows with an empty discriminator
// column are dropped.
func (o Options) ShouldSkipEmptyKey() bool {
	if o.SkipEmptyKey != nil {
		return *o.SkipEmptyKey
	}
	return true
}

func (o Options) clock() func() time.Time {
	if o.Clock != nil {
		return o.Clock
	}
	return time.Now
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
