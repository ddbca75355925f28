package definitions

import "github.com/yankeeinlondon/schematic/define"

// OllamaNative returns the Ollama native REST API definition for local LLM
// inference and model management. The local server requires no
// authentication. Streaming endpoints return NDJSON as raw bytes.
//
// The "Native" variant suffix is stripped during module path inference, so
// generated code lands in an "ollama" module. OllamaOpenAI keeps its full
// name and generates separately.
func OllamaNative() *define.RestAPI {
	return &define.RestAPI{
		Name:        "OllamaNative",
		Description: "Ollama native REST API for local LLM inference and model management",
		BaseURL:     "http://localhost:11434",
		DocsURL:     "https://github.com/ollama/ollama/blob/main/docs/api.md",
		Auth:        define.AuthNone{},
		Endpoints: []define.Endpoint{
			// Generation
			{
				ID:          "Generate",
				Method:      define.Post,
				Path:        "/api/generate",
				Description: "Generate text completion from a prompt (streaming NDJSON by default)",
				Request:     define.JSONRequest{Schema: define.NewSchema("GenerateBody")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "Chat",
				Method:      define.Post,
				Path:        "/api/chat",
				Description: "Generate chat completion from messages (streaming NDJSON by default)",
				Request:     define.JSONRequest{Schema: define.NewSchema("ChatBody")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "Embeddings",
				Method:      define.Post,
				Path:        "/api/embeddings",
				Description: "Generate embeddings for text",
				Request:     define.JSONRequest{Schema: define.NewSchema("EmbeddingsBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("EmbeddingsResponse")},
			},

			// Model management
			{
				ID:          "ListModels",
				Method:      define.Get,
				Path:        "/api/tags",
				Description: "List locally available models",
				Response:    define.JSONResponse{Schema: define.NewSchema("ListModelsResponse")},
			},
			{
				ID:          "ShowModel",
				Method:      define.Post,
				Path:        "/api/show",
				Description: "Show detailed information about a model",
				Request:     define.JSONRequest{Schema: define.NewSchema("ShowModelBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("ShowModelResponse")},
			},
			{
				ID:          "PullModel",
				Method:      define.Post,
				Path:        "/api/pull",
				Description: "Pull a model from the Ollama registry (streaming progress by default)",
				Request:     define.JSONRequest{Schema: define.NewSchema("PullModelBody")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "PushModel",
				Method:      define.Post,
				Path:        "/api/push",
				Description: "Push a model to the Ollama registry (streaming progress by default)",
				Request:     define.JSONRequest{Schema: define.NewSchema("PushModelBody")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "CopyModel",
				Method:      define.Post,
				Path:        "/api/copy",
				Description: "Copy a model to a new name",
				Request:     define.JSONRequest{Schema: define.NewSchema("CopyModelBody")},
				Response:    define.EmptyResponse{},
			},
			{
				ID:          "DeleteModel",
				Method:      define.Delete,
				Path:        "/api/delete",
				Description: "Delete a model",
				Request:     define.JSONRequest{Schema: define.NewSchema("DeleteModelBody")},
				Response:    define.EmptyResponse{},
			},
			{
				ID:          "CreateModel",
				Method:      define.Post,
				Path:        "/api/create",
				Description: "Create a model from a Modelfile (streaming progress by default)",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateModelBody")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "ListRunningModels",
				Method:      define.Get,
				Path:        "/api/ps",
				Description: "List models currently loaded in memory",
				Response:    define.JSONResponse{Schema: define.NewSchema("ListRunningModelsResponse")},
			},
		},
	}
}

// OllamaOpenAI returns the Ollama OpenAI-compatible API definition. Ollama
// ignores API keys but accepts them, so no auth strategy is declared.
func OllamaOpenAI() *define.RestAPI {
	return &define.RestAPI{
		Name:        "OllamaOpenAI",
		Description: "Ollama OpenAI-compatible API for drop-in client reuse",
		BaseURL:     "http://localhost:11434",
		DocsURL:     "https://github.com/ollama/ollama/blob/main/docs/openai.md",
		Auth:        define.AuthNone{},
		Endpoints: []define.Endpoint{
			{
				ID:          "ChatCompletions",
				Method:      define.Post,
				Path:        "/v1/chat/completions",
				Description: "Create chat completion (SSE streaming when stream=true)",
				Request:     define.JSONRequest{Schema: define.NewSchema("OpenAIChatCompletionRequest")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "Completions",
				Method:      define.Post,
				Path:        "/v1/completions",
				Description: "Create text completion (SSE streaming when stream=true)",
				Request:     define.JSONRequest{Schema: define.NewSchema("OpenAICompletionRequest")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "Embeddings",
				Method:      define.Post,
				Path:        "/v1/embeddings",
				Description: "Generate embeddings for text",
				Request:     define.JSONRequest{Schema: define.NewSchema("OpenAIEmbeddingRequest")},
				Response:    define.JSONResponse{Schema: define.NewSchema("OpenAIEmbeddingResponse")},
			},
			{
				ID:          "ListModels",
				Method:      define.Get,
				Path:        "/v1/models",
				Description: "List available models in OpenAI format",
				Response:    define.JSONResponse{Schema: define.NewSchema("OpenAIListModelsResponse")},
			},
		},
	}
}
