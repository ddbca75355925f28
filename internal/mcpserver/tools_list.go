package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/definitions"
	"github.com/yankeeinlondon/schematic/generator"
)

type listAPIsInput struct{}

type apiSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BaseURL     string `json:"base_url"`
	DocsURL     string `json:"docs_url,omitempty"`
	Auth        string `json:"auth"`
	Module      string `json:"module"`
	Endpoints   int    `json:"endpoints"`
}

type listAPIsOutput struct {
	Count int          `json:"count"`
	APIs  []apiSummary `json:"apis"`
}

func handleListAPIs(_ context.Context, _ *mcp.CallToolRequest, _ listAPIsInput) (*mcp.CallToolResult, listAPIsOutput, error) {
	apis := definitions.All()

	output := listAPIsOutput{Count: len(apis)}
	output.APIs = makeSlice[apiSummary](len(apis))
	for _, api := range apis {
		output.APIs = append(output.APIs, apiSummary{
			Name:        api.Name,
			Description: api.Description,
			BaseURL:     api.BaseURL,
			DocsURL:     api.DocsURL,
			Auth:        authName(api.Auth),
			Module:      generator.ModulePathFor(api),
			Endpoints:   len(api.Endpoints),
		})
	}

	return nil, output, nil
}

// authName renders an auth strategy for display.
func authName(auth define.AuthStrategy) string {
	switch a := auth.(type) {
	case nil, define.AuthNone:
		return "none"
	case define.BearerToken:
		return "bearer"
	case define.APIKey:
		return fmt.Sprintf("api-key (%s)", a.Header)
	case define.Basic:
		return "basic"
	default:
		return fmt.Sprintf("%T", a)
	}
}
