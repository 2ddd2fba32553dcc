package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-ats/internal/schemas"
)

var validateCVCmd = &cobra.Command{
	Use:   "validate-cv",
	Short: "Validate a CV JSON file against the CV schema",
	RunE:  runValidateCV,
}

var (
	validateCVFile   string
	validateCVSchema string
)

func init() {
	validateCVCmd.Flags().StringVar(&validateCVFile, "cv", "", "Path to CV JSON (required)")
	validateCVCmd.Flags().StringVar(&validateCVSchema, "schema", "", "Path to a schema file to use instead of the bundled one")
	_ = validateCVCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(validateCVCmd)
}

func runValidateCV(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	if validateCVSchema != "" {
		err = schemas.ValidateJSON(validateCVSchema, validateCVFile)
	} else {
		_, err = loadCV(validateCVFile)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(rt.out, "CV is valid: %s\n", validateCVFile)
	return nil
}
