package commands

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/generator"
	"github.com/yankeeinlondon/schematic/internal/cliutil"
	"github.com/yankeeinlondon/schematic/internal/severity"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	API    string
	File   string
	All    bool
	Quiet  bool
	Format string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.API, "api", "", "name of a bundled API definition (see 'schematic list')")
	fs.StringVar(&flags.File, "file", "", "path to a YAML definition file")
	fs.BoolVar(&flags.All, "all", false, "validate every bundled API definition")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematic validate [flags]\n\n")
		cliutil.Writef(fs.Output(), "Validate API definitions and report every diagnostic the validator collects.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematic validate --api OpenAI\n")
		cliutil.Writef(fs.Output(), "  schematic validate --file defs.yaml\n")
		cliutil.Writef(fs.Output(), "  schematic validate --all\n")
		cliutil.Writef(fs.Output(), "  schematic validate --api EmqxBasic --format json | jq '.valid'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Validation successful\n")
		cliutil.Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// validateIssueReport is one diagnostic in structured output.
type validateIssueReport struct {
	Code     string `json:"code" yaml:"code"`
	Path     string `json:"path" yaml:"path"`
	Message  string `json:"message" yaml:"message"`
	Severity string `json:"severity" yaml:"severity"`
}

// validateReport is the structured output of the validate command.
type validateReport struct {
	Valid        bool                  `json:"valid" yaml:"valid"`
	APIs         []string              `json:"apis" yaml:"apis"`
	ErrorCount   int                   `json:"error_count" yaml:"error_count"`
	WarningCount int                   `json:"warning_count" yaml:"warning_count"`
	Issues       []validateIssueReport `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("validate command takes no positional arguments")
	}

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	apis, err := resolveDefinitions(flags.API, flags.File, flags.All)
	if err != nil {
		return err
	}

	startTime := time.Now()
	result := generator.Validate(apis...)
	totalTime := time.Since(startTime)

	report := validateReport{
		Valid:      result.Ok(),
		ErrorCount: result.ErrorCount(),
	}
	for _, api := range apis {
		report.APIs = append(report.APIs, api.Name)
	}
	for _, issue := range result.Issues {
		if issue.Severity == severity.SeverityWarning {
			report.WarningCount++
		}
		report.Issues = append(report.Issues, validateIssueReport{
			Code:     string(issue.Code),
			Path:     issue.Path,
			Message:  issue.Message,
			Severity: issue.Severity.String(),
		})
	}

	if flags.Format != FormatText {
		if err := OutputStructured(report, flags.Format); err != nil {
			return err
		}
		if !report.Valid {
			return fmt.Errorf("validation failed with %d error(s)", report.ErrorCount)
		}
		return nil
	}

	if !flags.Quiet {
		fmt.Printf("Definition Validator\n")
		fmt.Printf("====================\n\n")
		fmt.Printf("schematic version: %s\n", schematic.Version())
		fmt.Printf("APIs: %v\n", report.APIs)
		fmt.Printf("Total Time: %v\n\n", totalTime)

		if len(result.Issues) > 0 {
			fmt.Printf("Issues (%d):\n", len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Printf("  %s\n", issue.String())
			}
			fmt.Println()
		}
	}

	if report.Valid {
		fmt.Printf("✓ Validation passed")
		if report.WarningCount > 0 {
			fmt.Printf(" with %d warning(s)", report.WarningCount)
		}
		fmt.Println()
		return nil
	}

	fmt.Printf("✗ Validation failed: %d error(s)", report.ErrorCount)
	if report.WarningCount > 0 {
		fmt.Printf(", %d warning(s)", report.WarningCount)
	}
	fmt.Println()
	return fmt.Errorf("validation failed with %d error(s)", report.ErrorCount)
}
