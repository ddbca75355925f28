package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/definitions"
	"github.com/yankeeinlondon/schematic/generator"
	"github.com/yankeeinlondon/schematic/internal/cliutil"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Format string
}

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a ListFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematic list [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the bundled API definitions available to validate and generate.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematic list\n")
		cliutil.Writef(fs.Output(), "  schematic list --format json | jq '.[].name'\n")
	}

	return fs, flags
}

// listEntry describes one bundled definition in structured output.
type listEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	BaseURL     string `json:"base_url" yaml:"base_url"`
	Auth        string `json:"auth" yaml:"auth"`
	Module      string `json:"module" yaml:"module"`
	Endpoints   int    `json:"endpoints" yaml:"endpoints"`
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("list command takes no positional arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var entries []listEntry
	for _, api := range definitions.All() {
		entries = append(entries, listEntry{
			Name:        api.Name,
			Description: api.Description,
			BaseURL:     api.BaseURL,
			Auth:        describeAuth(api.Auth),
			Module:      generator.ModulePathFor(api),
			Endpoints:   len(api.Endpoints),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}

	fmt.Printf("Bundled API Definitions (%d):\n\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("  %-16s %-14s %-10s %3d endpoints  %s\n",
			entry.Name, entry.Module, entry.Auth, entry.Endpoints, entry.BaseURL)
	}
	return nil
}

func describeAuth(auth define.AuthStrategy) string {
	switch auth.(type) {
	case define.BearerToken:
		return "bearer"
	case define.APIKey:
		return "api-key"
	case define.Basic:
		return "basic"
	default:
		return "none"
	}
}
