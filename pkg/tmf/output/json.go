// Package output serializes the assembled reference model.
package output

import (
	"encoding/json"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// ToJSON renders the reference model, optionally indented.
func ToJSON(m *models.ReferenceModel, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}
