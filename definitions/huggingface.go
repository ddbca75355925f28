package definitions

import "github.com/yankeeinlondon/schematic/define"

// HuggingFaceHub returns the Hugging Face Hub API definition for model and
// dataset discovery plus repository management.
//
// The bearer token is probed from HF_TOKEN, HUGGING_FACE_API_KEY, and
// HF_API_KEY in that order. README and model card endpoints return raw
// markdown text rather than JSON.
func HuggingFaceHub() *define.RestAPI {
	return &define.RestAPI{
		Name:        "HuggingFaceHub",
		Description: "Hugging Face Hub API for model and dataset discovery",
		BaseURL:     "https://huggingface.co/api",
		DocsURL:     "https://huggingface.co/docs/hub/api",
		Auth:        define.BearerToken{},
		EnvAuth:     []string{"HF_TOKEN", "HUGGING_FACE_API_KEY", "HF_API_KEY"},
		Endpoints: []define.Endpoint{
			// Models
			{
				ID:          "ListModels",
				Method:      define.Get,
				Path:        "/models",
				Description: "Lists models with optional filtering",
				Response:    define.JSONResponse{Schema: define.NewSchema("[]ModelInfo")},
			},
			{
				ID:          "GetModel",
				Method:      define.Get,
				Path:        "/models/{repo_id}",
				Description: "Gets detailed information about a specific model",
				Response:    define.JSONResponse{Schema: define.NewSchema("ModelInfo")},
			},
			{
				ID:          "ListModelFiles",
				Method:      define.Get,
				Path:        "/models/{repo_id}/tree/{revision}",
				Description: "Lists files in a model repository at a specific revision",
				Response:    define.JSONResponse{Schema: define.NewSchema("[]RepoFile")},
			},
			{
				ID:          "ListModelCommits",
				Method:      define.Get,
				Path:        "/models/{repo_id}/commits/{revision}",
				Description: "Lists commits for a model repository",
				Response:    define.JSONResponse{Schema: define.NewSchema("[]Commit")},
			},
			{
				ID:          "GetModelReadme",
				Method:      define.Get,
				Path:        "/models/{repo_id}/resolve/{revision}/README.md",
				Description: "Gets the README file content for a model",
				Response:    define.TextResponse{},
			},

			// Datasets
			{
				ID:          "ListDatasets",
				Method:      define.Get,
				Path:        "/datasets",
				Description: "Lists datasets with optional filtering",
				Response:    define.JSONResponse{Schema: define.NewSchema("[]DatasetInfo")},
			},
			{
				ID:          "GetDataset",
				Method:      define.Get,
				Path:        "/datasets/{repo_id}",
				Description: "Gets detailed information about a specific dataset",
				Response:    define.JSONResponse{Schema: define.NewSchema("DatasetInfo")},
			},
			{
				ID:          "GetDatasetReadme",
				Method:      define.Get,
				Path:        "/datasets/{repo_id}/resolve/{revision}/README.md",
				Description: "Gets the README file content for a dataset",
				Response:    define.TextResponse{},
			},

			// Repository management
			{
				ID:          "CreateRepo",
				Method:      define.Post,
				Path:        "/repos/create",
				Description: "Creates a new repository (model, dataset, or space)",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateRepoBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("RepoUrl")},
			},
			{
				ID:          "DeleteRepo",
				Method:      define.Delete,
				Path:        "/repos/delete",
				Description: "Deletes a repository",
				Request:     define.JSONRequest{Schema: define.NewSchema("DeleteRepoBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("StatusResponse")},
			},
			{
				ID:          "MoveRepo",
				Method:      define.Post,
				Path:        "/repos/move",
				Description: "Moves or renames a repository",
				Request:     define.JSONRequest{Schema: define.NewSchema("MoveRepoBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("StatusResponse")},
			},

			// User
			{
				ID:          "WhoAmI",
				Method:      define.Get,
				Path:        "/whoami-v2",
				Description: "Gets information about the authenticated user",
				Response:    define.JSONResponse{Schema: define.NewSchema("UserInfo")},
			},
		},
	}
}
