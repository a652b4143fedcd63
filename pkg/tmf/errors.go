package tmf

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates embeddings were requested without a
// credential. Raised before any spreadsheet work begins.
var ErrMissingAPIKey = errors.New("embeddings requested but OPENAI_API_KEY is not set")

// TransformError tags a failure with the pipeline stage it occurred in.
type TransformError struct {
	// Stage is one of "workbook", "headers", "records", "glossary",
	// "embeddings".
	Stage string
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform failed in %s: %v", e.Stage, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

func newTransformError(stage string, err error) *TransformError {
	return &TransformError{Stage: stage, Err: err}
}
