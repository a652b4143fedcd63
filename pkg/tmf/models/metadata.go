package models

// DocumentMetadata describes the source document a transform run was
// derived from, plus the run's own generation timestamp.
type DocumentMetadata struct {
	// GenerationTimestamp is the UTC instant the transform ran, RFC 3339.
	GenerationTimestamp string `json:"_generation_timestamp"`
	// Title is the document title from the first cell of the title row.
	Title string `json:"title"`
	// Version is the document version, empty when the title row has none.
	Version string `json:"version"`
	// VersionDate is the version date as YYYY-MM-DD, empty when absent.
	VersionDate string `json:"version_date"`
}
