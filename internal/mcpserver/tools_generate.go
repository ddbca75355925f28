package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic/generator"
)

type generateInput struct {
	definitionInput
	OutputDir   string `json:"output_dir,omitempty"   jsonschema:"Directory to write generated files to (default from SCHEMATIC_OUTPUT_DIR)"`
	PackageName string `json:"package_name,omitempty" jsonschema:"Go package name for generated code (default: schema)"`
	DryRun      *bool  `json:"dry_run,omitempty"      jsonschema:"Run the full pipeline without writing files"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success     bool                `json:"success"`
	Written     bool                `json:"written"`
	OutputDir   string              `json:"output_dir,omitempty"`
	PackageName string              `json:"package_name"`
	FileCount   int                 `json:"file_count"`
	Files       []generatedFileInfo `json:"files"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	apis, err := input.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	// Apply config defaults when input fields are omitted.
	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	pkgName := input.PackageName
	if pkgName == "" {
		pkgName = cfg.PackageName
	}
	dryRun := cfg.DryRun
	if input.DryRun != nil {
		dryRun = *input.DryRun
	}

	result, err := generator.Run(
		generator.WithAPIs(apis...),
		generator.WithOutputDir(outputDir),
		generator.WithPackageName(pkgName),
		generator.WithDryRun(dryRun),
	)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Success:     true,
		Written:     result.Written,
		PackageName: result.PackageName,
		FileCount:   len(result.Files),
	}
	if result.Written {
		output.OutputDir = outputDir
	}
	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}

	return nil, output, nil
}
