package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a candidate topics file against the input schema",
	Long:  "Validates a candidate topics JSON file against schemas/topic_candidates.schema.json before planning, so malformed batches fail fast instead of being silently skipped.",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to candidate topics JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	// Validate input file exists
	if _, err := os.Stat(validateInput); os.IsNotExist(err) {
		return fmt.Errorf("candidates file not found: %s", validateInput)
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/topic_candidates.schema.json")
	if schemaPath == "" {
		return fmt.Errorf("could not locate schemas/topic_candidates.schema.json")
	}

	if err := schemas.ValidateJSON(schemaPath, validateInput); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "%v", validationErr)
			return fmt.Errorf("candidates file is invalid: %d error(s)", len(validationErr.Errors))
		}
		if errors.As(err, &schemaLoadErr) {
			return fmt.Errorf("could not load schema: %w", schemaLoadErr)
		}
		return fmt.Errorf("failed to validate candidates file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s conforms to the candidate topics schema\n", validateInput)
	return nil
}
