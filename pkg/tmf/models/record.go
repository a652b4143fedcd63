package models

// Record is one reconciled data row keyed by resolved field keys. Values
// are scalar strings, ordered string slices (multi-line cells), or nested
// maps for compound keys sharing a section.
type Record map[string]any

// Embedding carries the vector computed for a record's source text.
type Embedding struct {
	// Source is the flattened text the vector was computed from.
	Source string `json:"source"`
	// Vector is the embedding returned by the remote model.
	Vector []float64 `json:"vector"`
}
