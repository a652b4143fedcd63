package tmf

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/embeddings"
	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/parser"
	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/reader"
)

// Transform reads the workbook at path and assembles the normalized
// reference model. Rows are processed strictly in source order: both the
// header section carry and the glossary continuation merge depend on it.
func Transform(ctx context.Context, path string, opts Options) (*models.ReferenceModel, error) {
	log := opts.logger()

	if opts.Embeddings && opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	wb, err := reader.Open(path)
	if err != nil {
		return nil, newTransformError("workbook", err)
	}
	defer wb.Close()

	modelRows, err := wb.Rows(opts.ModelSheet)
	if err != nil {
		return nil, newTransformError("workbook", err)
	}
	if len(modelRows) < 3 {
		return nil, newTransformError("workbook",
			fmt.Errorf("sheet %q has %d rows, need a title row and two header rows", opts.ModelSheet, len(modelRows)))
	}

	metadata := parser.ExtractMetadata(modelRows[0], opts.clock())

	keys, err := parser.ReconcileHeaders(modelRows[1], modelRows[2])
	if err != nil {
		return nil, newTransformError("headers", err)
	}
	log.Info("reconciled headers", zap.Int("columns", len(keys)))

	records, err := parser.BuildRecords(keys, modelRows[3:], opts.ShouldSkipEmptyKey())
	if err != nil {
		return nil, newTransformError("records", err)
	}
	log.Info("built records",
		zap.Int("rows", len(modelRows)-3),
		zap.Int("records", len(records)))

	glossaryRows, err := wb.Rows(opts.GlossarySheet)
	if err != nil {
		return nil, newTransformError("workbook", err)
	}
	glossary, err := parser.ReconcileGlossary(glossaryRows)
	if err != nil {
		return nil, newTransformError("glossary", err)
	}
	log.Info("reconciled glossary", zap.Int("terms", len(glossary)))

	if opts.Embeddings {
		client := embeddings.NewClient(opts.APIKey, log)
		if err := client.EmbedRecords(ctx, records); err != nil {
			return nil, newTransformError("embeddings", err)
		}
	}

	return &models.ReferenceModel{
		Metadata: metadata,
		Artifacts: models.ArtifactSet{
			Count: len(records),
			Items: records,
		},
		Glossary: glossary,
	}, nil
}
