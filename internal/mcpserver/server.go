// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schematic capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic"
)

const serverInstructions = `schematic MCP server — validates REST API definitions and generates typed HTTP client source from them.

Configuration: All defaults are configurable via SCHEMATIC_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SCHEMATIC_OUTPUT_DIR (default: ./generated) — default output directory for the generate tool
- SCHEMATIC_PACKAGE_NAME (default: schema) — default package name for generated code
- SCHEMATIC_DRY_RUN (default: false) — make generate runs dry by default

Definitions: tools accept either the name of a bundled API definition (see list_apis) or the path to a YAML definition file. Credential environment variables named in definitions are never read at generation time; only their names are emitted into generated source.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schematic", Version: schematic.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate REST API definitions before generation. Accepts a bundled API name or a YAML definition file. Returns every diagnostic the validator collects (naming collisions, malformed paths, duplicate ids, invalid suffixes, credential warnings) rather than stopping at the first.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate typed HTTP client source from REST API definitions. Accepts a bundled API name or a YAML definition file. Writes one Go file per API module plus a shared runtime file and a go.mod manifest into output_dir; use dry_run=true to preview the file list without writing. Defaults are configurable via SCHEMATIC_OUTPUT_DIR, SCHEMATIC_PACKAGE_NAME, and SCHEMATIC_DRY_RUN env vars.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_apis",
		Description: "List the bundled REST API definitions with their base URLs, auth strategies, and endpoint counts. Names returned here are valid api values for the validate and generate tools.",
	}, handleListAPIs)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
