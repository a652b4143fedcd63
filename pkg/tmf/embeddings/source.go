package embeddings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

// SourceText flattens a record into "Key: value" pairs joined by commas,
// the labeled-paragraph shape the remote model embeds well. Keys are
// sorted so the text is deterministic for a given record.
func SourceText(rec models.Record) string {
	var parts []string
	for _, key := range sortedKeys(rec) {
		switch v := rec[key].(type) {
		case map[string]any:
			for _, leaf := range sortedKeys(v) {
				parts = append(parts, key+" "+leaf+": "+valueText(v[leaf]))
			}
		default:
			parts = append(parts, key+": "+valueText(v))
		}
	}
	return strings.Join(parts, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func valueText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, " ")
	default:
		return fmt.Sprint(t)
	}
}
