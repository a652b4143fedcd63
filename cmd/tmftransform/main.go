// Package main provides the CLI entry point for tmftransform.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf"
	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/output"
)

var (
	outputPath     string
	pretty         bool
	modelSheet     string
	glossarySheet  string
	keepEmptyRows  bool
	withEmbeddings bool
	verbose        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tmftransform [input.xlsx]",
		Short: "Convert a TMF reference-model workbook to normalized JSON",
		Long: `tmftransform reconciles the reference model's stacked header rows,
builds one record per data row, merges the glossary sheet's continuation
rows, and emits the result as a single JSON document.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&modelSheet, "model-sheet", tmf.DefaultModelSheet, "Name of the primary reference-model sheet")
	rootCmd.Flags().StringVar(&glossarySheet, "glossary-sheet", tmf.DefaultGlossarySheet, "Name of the glossary sheet")
	rootCmd.Flags().BoolVar(&keepEmptyRows, "keep-empty-rows", false, "Keep data rows whose first column is empty")
	rootCmd.Flags().BoolVar(&withEmbeddings, "embeddings", false, "Generate an embedding vector per record (requires OPENAI_API_KEY)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Console logging with debug detail")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	// A .env file is optional; the real environment still wins.
	_ = godotenv.Load()

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer logger.Sync()

	skip := !keepEmptyRows
	opts := tmf.Options{
		ModelSheet:    modelSheet,
		GlossarySheet: glossarySheet,
		SkipEmptyKey:  &skip,
		Embeddings:    withEmbeddings,
		APIKey:        os.Getenv("OPENAI_API_KEY"),
		Logger:        logger,
	}

	model, err := tmf.Transform(cmd.Context(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}

	jsonData, err := output.ToJSON(model, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	// Both configs log to stderr, keeping stdout clean for the JSON
	// document.
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
