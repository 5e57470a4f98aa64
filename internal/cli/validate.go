package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/harness"
)

// ScenarioLoadError describes one scenario file that failed to load.
type ScenarioLoadError struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool                `json:"valid"`
	Scenarios int                 `json:"scenarios"`
	Errors    []ScenarioLoadError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenarios-dir>",
		Short: "Check scenario files without running them",
		Long: `Parse every scenario file in a directory and report schema errors
(unknown fields, missing name/description/input, malformed assertions)
without running any session.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	files, err := findScenarioFiles(scenariosDir, "")
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}
	if len(files) == 0 {
		if err := formatter.Error(ErrCodeNoScenarios, "no scenario files found", scenariosDir); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, "no scenario files found")
	}
	formatter.VerboseLog("Found %d scenario file(s) in %s", len(files), scenariosDir)

	result := ValidationResult{Scenarios: len(files)}
	for _, f := range files {
		if _, err := harness.LoadScenario(f); err != nil {
			result.Errors = append(result.Errors, ScenarioLoadError{
				File:    filepath.Base(f),
				Message: err.Error(),
			})
		}
	}
	result.Valid = len(result.Errors) == 0

	if result.Valid {
		if opts.Format == "json" {
			return formatter.Success(result)
		}
		return formatter.Success(fmt.Sprintf("✓ %d scenario(s) valid", result.Scenarios))
	}

	if opts.Format == "json" {
		if err := formatter.Error(ErrCodeScenarioLoad, "invalid scenarios", result.Errors); err != nil {
			return err
		}
	} else {
		for _, e := range result.Errors {
			if err := formatter.Error(ErrCodeScenarioLoad, fmt.Sprintf("%s: %s", e.File, e.Message), nil); err != nil {
				return err
			}
		}
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%d invalid scenario(s)", len(result.Errors)))
}
