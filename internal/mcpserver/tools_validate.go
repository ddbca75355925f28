package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic/generator"
	"github.com/yankeeinlondon/schematic/internal/severity"
)

type validateInput struct {
	definitionInput
}

type validateIssue struct {
	Code     string `json:"code"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	APIs         []string        `json:"apis"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Issues       []validateIssue `json:"issues,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	apis, err := input.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	report := generator.Validate(apis...)

	output := validateOutput{
		Valid:      report.Ok(),
		ErrorCount: report.ErrorCount(),
	}
	for _, api := range apis {
		output.APIs = append(output.APIs, api.Name)
	}
	output.Issues = makeSlice[validateIssue](len(report.Issues))
	for _, issue := range report.Issues {
		if issue.Severity == severity.SeverityWarning {
			output.WarningCount++
		}
		output.Issues = append(output.Issues, validateIssue{
			Code:     string(issue.Code),
			Path:     issue.Path,
			Message:  issue.Message,
			Severity: issue.Severity.String(),
		})
	}

	return nil, output, nil
}
