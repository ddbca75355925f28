package commands

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/generator"
	"github.com/yankeeinlondon/schematic/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	API         string
	File        string
	All         bool
	Output      string
	PackageName string
	DryRun      bool
	Quiet       bool
	Format      string
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.API, "api", "", "name of a bundled API definition (see 'schematic list')")
	fs.StringVar(&flags.File, "file", "", "path to a YAML definition file")
	fs.BoolVar(&flags.All, "all", false, "generate every bundled API definition, one module per subdirectory")
	fs.StringVar(&flags.Output, "o", "./generated", "output directory for generated files")
	fs.StringVar(&flags.Output, "output", "./generated", "output directory for generated files")
	fs.StringVar(&flags.PackageName, "p", "schema", "package name for generated Go files")
	fs.StringVar(&flags.PackageName, "package", "schema", "package name for generated Go files")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "render files in memory without writing to disk")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output errors, no progress messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output errors, no progress messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematic generate [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate a typed Go client package from API definitions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematic generate --api ElevenLabs --output ./gen\n")
		cliutil.Writef(fs.Output(), "  schematic generate --file defs.yaml -o ./gen -p weatherapi\n")
		cliutil.Writef(fs.Output(), "  schematic generate --all -o ./clients\n")
		cliutil.Writef(fs.Output(), "  schematic generate --api OpenAI --dry-run\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Generation successful\n")
		cliutil.Writef(fs.Output(), "  1    Validation or generation failed\n")
	}

	return fs, flags
}

// generatedModuleReport describes one generated module in structured output.
type generatedModuleReport struct {
	Module    string   `json:"module" yaml:"module"`
	OutputDir string   `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	APIs      []string `json:"apis" yaml:"apis"`
	Files     []string `json:"files" yaml:"files"`
}

// generateReport is the structured output of the generate command.
type generateReport struct {
	Success bool                    `json:"success" yaml:"success"`
	Written bool                    `json:"written" yaml:"written"`
	Modules []generatedModuleReport `json:"modules" yaml:"modules"`
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command takes no positional arguments")
	}

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	apis, err := resolveDefinitions(flags.API, flags.File, flags.All)
	if err != nil {
		return err
	}

	// Each module path gets its own generation run. Unrelated APIs sharing one
	// flat package would collide on wrapper type names.
	groups := make(map[string][]*define.RestAPI)
	for _, api := range apis {
		module := generator.ModulePathFor(api)
		groups[module] = append(groups[module], api)
	}
	modules := make([]string, 0, len(groups))
	for module := range groups {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	startTime := time.Now()
	report := generateReport{Success: true, Written: !flags.DryRun}
	for _, module := range modules {
		outDir := flags.Output
		if len(groups) > 1 {
			outDir = filepath.Join(flags.Output, module)
		}

		opts := []generator.Option{
			generator.WithAPIs(groups[module]...),
			generator.WithPackageName(flags.PackageName),
			generator.WithDryRun(flags.DryRun),
		}
		if !flags.DryRun {
			opts = append(opts, generator.WithOutputDir(outDir))
		}

		result, err := generator.Run(opts...)
		if err != nil {
			return fmt.Errorf("generating module %q: %w", module, err)
		}

		moduleReport := generatedModuleReport{Module: module}
		if !flags.DryRun {
			moduleReport.OutputDir = outDir
		}
		for _, api := range groups[module] {
			moduleReport.APIs = append(moduleReport.APIs, api.Name)
		}
		for _, file := range result.Files {
			moduleReport.Files = append(moduleReport.Files, file.Name)
		}
		report.Modules = append(report.Modules, moduleReport)

		if flags.Format == FormatText && !flags.Quiet {
			if flags.DryRun {
				fmt.Printf("Module %s (dry run, %d files):\n", module, len(result.Files))
			} else {
				fmt.Printf("Module %s -> %s (%d files):\n", module, outDir, len(result.Files))
			}
			for _, file := range result.Files {
				fmt.Printf("  %s (%d bytes)\n", file.Name, len(file.Content))
			}
		}
	}
	totalTime := time.Since(startTime)

	if flags.Format != FormatText {
		return OutputStructured(report, flags.Format)
	}

	if !flags.Quiet {
		fmt.Printf("\nTotal Time: %v\n", totalTime)
	}
	if flags.DryRun {
		fmt.Printf("✓ Generation succeeded (dry run, nothing written)\n")
	} else {
		fmt.Printf("✓ Generation succeeded\n")
	}
	return nil
}
