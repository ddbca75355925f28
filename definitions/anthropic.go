package definitions

import "github.com/yankeeinlondon/schematic/define"

// Anthropic returns the Anthropic Messages API definition.
//
// Authentication uses an API key via the X-Api-Key header, resolved from
// ANTHROPIC_API_KEY. Every request also carries the required
// anthropic-version header, declared once at the API level.
func Anthropic() *define.RestAPI {
	return &define.RestAPI{
		Name:        "Anthropic",
		Description: "Anthropic Messages API for Claude AI interactions and agent tool use",
		BaseURL:     "https://api.anthropic.com/v1",
		DocsURL:     "https://docs.anthropic.com/en/api/messages",
		Auth:        define.APIKey{Header: "X-Api-Key"},
		EnvAuth:     []string{"ANTHROPIC_API_KEY"},
		Headers: []define.Header{
			{Name: "anthropic-version", Value: "2023-06-01"},
		},
		Endpoints: []define.Endpoint{
			{
				ID:          "CreateMessage",
				Method:      define.Post,
				Path:        "/messages",
				Description: "Create a message with optional tool use for agent interactions",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateMessageBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("MessageResponse")},
			},
			{
				ID:          "CountTokens",
				Method:      define.Post,
				Path:        "/messages/count_tokens",
				Description: "Count tokens in a message before sending",
				Request:     define.JSONRequest{Schema: define.NewSchema("CountTokensBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("CountTokensResponse")},
			},
			{
				ID:          "ListModels",
				Method:      define.Get,
				Path:        "/models",
				Description: "List available Claude models",
				Response:    define.JSONResponse{Schema: define.NewSchema("ListModelsResponse")},
			},
			{
				ID:          "RetrieveModel",
				Method:      define.Get,
				Path:        "/models/{model_id}",
				Description: "Get information about a specific model",
				Response:    define.JSONResponse{Schema: define.NewSchema("ModelInfo")},
			},
		},
	}
}
