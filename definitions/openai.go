package definitions

import "github.com/yankeeinlondon/schematic/define"

// OpenAI returns the OpenAI Models API definition with endpoints for
// listing, retrieving, and deleting models.
func OpenAI() *define.RestAPI {
	return &define.RestAPI{
		Name:        "OpenAI",
		Description: "OpenAI REST API for model management",
		BaseURL:     "https://api.openai.com/v1",
		DocsURL:     "https://platform.openai.com/docs/api-reference",
		Auth:        define.BearerToken{},
		EnvAuth:     []string{"OPENAI_API_KEY"},
		Endpoints: []define.Endpoint{
			{
				ID:          "ListModels",
				Method:      define.Get,
				Path:        "/models",
				Description: "Lists the currently available models",
				Response:    define.JSONResponse{Schema: define.NewSchema("ListModelsResponse")},
			},
			{
				ID:          "RetrieveModel",
				Method:      define.Get,
				Path:        "/models/{model}",
				Description: "Retrieves a model instance",
				Response:    define.JSONResponse{Schema: define.NewSchema("Model")},
			},
			{
				ID:          "DeleteModel",
				Method:      define.Delete,
				Path:        "/models/{model}",
				Description: "Delete a fine-tuned model",
				Response:    define.JSONResponse{Schema: define.NewSchema("DeleteModelResponse")},
			},
		},
	}
}
