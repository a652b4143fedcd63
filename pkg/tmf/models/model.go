package models

// ArtifactSet holds the ordered records together with their count.
type ArtifactSet struct {
	// Count is the number of items.
	Count int `json:"_count"`
	// Items are the reconciled records in source row order.
	Items []Record `json:"items"`
}

// ReferenceModel is the fully assembled output document.
type ReferenceModel struct {
	// Metadata describes the source document and the run.
	Metadata DocumentMetadata `json:"_metadata"`
	// Artifacts are the reconciled data records.
	Artifacts ArtifactSet `json:"artifacts"`
	// Glossary maps abbreviation to definition.
	Glossary map[string]string `json:"glossary"`
}
