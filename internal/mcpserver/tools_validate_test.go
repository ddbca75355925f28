package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTool_BundledAPI(t *testing.T) {
	input := validateInput{
		definitionInput: definitionInput{API: "OpenAI"},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, 0, output.ErrorCount)
	assert.Equal(t, []string{"OpenAI"}, output.APIs)
}

func TestValidateTool_UnknownAPI(t *testing.T) {
	input := validateInput{
		definitionInput: definitionInput{API: "NoSuchAPI"},
	}
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestValidateTool_InvalidDefinitionFile(t *testing.T) {
	content := `name: Broken
base_url: https://broken.test
request_suffix: "Req!"
endpoints:
  - id: GetThing
    method: GET
    path: /things/{id
    response:
      kind: empty
`
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	input := validateInput{
		definitionInput: definitionInput{File: path},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.NotZero(t, output.ErrorCount)

	codes := make([]string, len(output.Issues))
	for i, issue := range output.Issues {
		codes[i] = issue.Code
	}
	assert.Contains(t, codes, "invalid-request-suffix")
	assert.Contains(t, codes, "malformed-path")
}

func TestValidateTool_RequiresASource(t *testing.T) {
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestValidateTool_WarningsDoNotInvalidate(t *testing.T) {
	content := `name: Unconfigured
base_url: https://unconfigured.test
auth:
  strategy: bearer
endpoints:
  - id: Ping
    method: GET
    path: /ping
    response:
      kind: empty
`
	path := filepath.Join(t.TempDir(), "unconfigured.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	input := validateInput{
		definitionInput: definitionInput{File: path},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, 0, output.ErrorCount)
	assert.NotZero(t, output.WarningCount)
}
