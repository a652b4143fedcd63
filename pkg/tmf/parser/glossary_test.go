package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

func TestReconcileGlossaryContinuation(t *testing.T) {
	rows := [][]models.Cell{
		textRow("TMF", "Trial Master File"),
		textRow("", "see ICH E6"),
	}
	glossary, err := ReconcileGlossary(rows)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"TMF": "Trial Master File see ICH E6",
	}, glossary)
}

func TestReconcileGlossaryFiltersHeaderEchoes(t *testing.T) {
	rows := [][]models.Cell{
		textRow("Abbreviation", "Meaning"),
		textRow("TMF", "Trial Master File"),
		textRow("Zone", ""),
		textRow("CRO", "Contract Research Organization"),
		textRow("Item", "whatever"),
	}
	glossary, err := ReconcileGlossary(rows)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"TMF": "Trial Master File",
		"CRO": "Contract Research Organization",
	}, glossary)
}

func TestReconcileGlossaryOrphanContinuation(t *testing.T) {
	rows := [][]models.Cell{
		textRow("", "dangling definition"),
	}
	_, err := ReconcileGlossary(rows)
	require.ErrorIs(t, err, ErrOrphanContinuation)
}

func TestReconcileGlossaryContinuationAfterHeaderEcho(t *testing.T) {
	// A header echo between an entry and its continuation must not break
	// the merge.
	rows := [][]models.Cell{
		textRow("TMF", "Trial Master File"),
		textRow("Abbreviation", "Meaning"),
		textRow("", "see ICH E6"),
	}
	glossary, err := ReconcileGlossary(rows)
	require.NoError(t, err)
	assert.Equal(t, "Trial Master File see ICH E6", glossary["TMF"])
}

func TestReconcileGlossaryDuplicateTermLaterWins(t *testing.T) {
	rows := [][]models.Cell{
		textRow("TMF", "old"),
		textRow("TMF", "new"),
	}
	glossary, err := ReconcileGlossary(rows)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TMF": "new"}, glossary)
}

func TestReconcileGlossaryTermWithoutDefinition(t *testing.T) {
	glossary, err := ReconcileGlossary([][]models.Cell{textRow("TMF")})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TMF": ""}, glossary)
}

func TestReconcileGlossaryTrimsColumns(t *testing.T) {
	rows := [][]models.Cell{
		textRow("  TMF  ", "  Trial Master File  "),
	}
	glossary, err := ReconcileGlossary(rows)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TMF": "Trial Master File"}, glossary)
}
