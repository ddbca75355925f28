package definitions

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/yankeeinlondon/schematic/define"
)

// YAML definition loading. Definitions normally live in Go source so bodies
// can reference real schema types, but a YAML document is enough for APIs
// whose schemas are declared by name only. A stream may hold multiple
// documents, one API per document.
//
// Document shape:
//
//	name: OpenAI
//	description: OpenAI REST API for model management
//	base_url: https://api.openai.com/v1
//	docs_url: https://platform.openai.com/docs/api-reference
//	auth:
//	  strategy: bearer
//	env_auth: [OPENAI_API_KEY]
//	endpoints:
//	  - id: ListModels
//	    method: GET
//	    path: /models
//	    response:
//	      kind: json
//	      type: ListModelsResponse

type apiDoc struct {
	Name          string        `yaml:"name"`
	Description   string        `yaml:"description"`
	BaseURL       string        `yaml:"base_url"`
	DocsURL       string        `yaml:"docs_url"`
	Auth          *authDoc      `yaml:"auth"`
	EnvAuth       []string      `yaml:"env_auth"`
	EnvUsername   string        `yaml:"env_username"`
	EnvPassword   string        `yaml:"env_password"`
	Headers       []headerDoc   `yaml:"headers"`
	Endpoints     []endpointDoc `yaml:"endpoints"`
	ModulePath    string        `yaml:"module_path"`
	RequestSuffix string        `yaml:"request_suffix"`
}

type authDoc struct {
	Strategy string `yaml:"strategy"`
	Header   string `yaml:"header"`
}

type headerDoc struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type endpointDoc struct {
	ID          string       `yaml:"id"`
	Method      string       `yaml:"method"`
	Path        string       `yaml:"path"`
	Description string       `yaml:"description"`
	Request     *requestDoc  `yaml:"request"`
	Response    *responseDoc `yaml:"response"`
	Headers     []headerDoc  `yaml:"headers"`
}

type requestDoc struct {
	Kind        string     `yaml:"kind"`
	Type        string     `yaml:"type"`
	ImportPath  string     `yaml:"import_path"`
	ContentType string     `yaml:"content_type"`
	Fields      []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Type        string   `yaml:"type"`
	ImportPath  string   `yaml:"import_path"`
	Accept      []string `yaml:"accept"`
	Min         int      `yaml:"min"`
	Max         int      `yaml:"max"`
	Optional    bool     `yaml:"optional"`
	Description string   `yaml:"description"`
}

type responseDoc struct {
	Kind       string `yaml:"kind"`
	Type       string `yaml:"type"`
	ImportPath string `yaml:"import_path"`
}

// LoadFile reads API definitions from a YAML file. Each document in the
// stream becomes one definition.
func LoadFile(path string) ([]*define.RestAPI, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening definition file: %w", err)
	}
	defer f.Close()

	apis, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return apis, nil
}

// Load reads API definitions from a YAML stream.
func Load(r io.Reader) ([]*define.RestAPI, error) {
	dec := yaml.NewDecoder(r)
	var apis []*define.RestAPI
	for {
		var doc apiDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding definition document %d: %w", len(apis)+1, err)
		}
		api, err := doc.toAPI()
		if err != nil {
			return nil, fmt.Errorf("definition document %d: %w", len(apis)+1, err)
		}
		apis = append(apis, api)
	}
	if len(apis) == 0 {
		return nil, errors.New("no definition documents found")
	}
	return apis, nil
}

func (d *apiDoc) toAPI() (*define.RestAPI, error) {
	if d.Name == "" {
		return nil, errors.New("missing api name")
	}
	if d.BaseURL == "" {
		return nil, fmt.Errorf("api %q: missing base_url", d.Name)
	}

	auth, err := d.Auth.toAuth()
	if err != nil {
		return nil, fmt.Errorf("api %q: %w", d.Name, err)
	}

	api := &define.RestAPI{
		Name:          d.Name,
		Description:   d.Description,
		BaseURL:       d.BaseURL,
		DocsURL:       d.DocsURL,
		Auth:          auth,
		EnvAuth:       d.EnvAuth,
		EnvUsername:   d.EnvUsername,
		EnvPassword:   d.EnvPassword,
		Headers:       toHeaders(d.Headers),
		ModulePath:    d.ModulePath,
		RequestSuffix: d.RequestSuffix,
	}
	for _, ed := range d.Endpoints {
		ep, err := ed.toEndpoint()
		if err != nil {
			return nil, fmt.Errorf("api %q: %w", d.Name, err)
		}
		api.Endpoints = append(api.Endpoints, ep)
	}
	return api, nil
}

func (d *authDoc) toAuth() (define.AuthStrategy, error) {
	if d == nil {
		return define.AuthNone{}, nil
	}
	switch d.Strategy {
	case "", "none":
		return define.AuthNone{}, nil
	case "bearer":
		return define.BearerToken{Header: d.Header}, nil
	case "api_key":
		if d.Header == "" {
			return nil, errors.New("api_key auth requires a header name")
		}
		return define.APIKey{Header: d.Header}, nil
	case "basic":
		return define.Basic{}, nil
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", d.Strategy)
	}
}

func (d *endpointDoc) toEndpoint() (define.Endpoint, error) {
	if d.ID == "" {
		return define.Endpoint{}, errors.New("endpoint missing id")
	}
	req, err := d.Request.toRequest()
	if err != nil {
		return define.Endpoint{}, fmt.Errorf("endpoint %q: %w", d.ID, err)
	}
	resp, err := d.Response.toResponse()
	if err != nil {
		return define.Endpoint{}, fmt.Errorf("endpoint %q: %w", d.ID, err)
	}
	return define.Endpoint{
		ID:          d.ID,
		Method:      define.RestMethod(d.Method),
		Path:        d.Path,
		Description: d.Description,
		Request:     req,
		Response:    resp,
		Headers:     toHeaders(d.Headers),
	}, nil
}

func (d *requestDoc) toRequest() (define.Request, error) {
	if d == nil {
		return nil, nil
	}
	switch d.Kind {
	case "json":
		if d.Type == "" {
			return nil, errors.New("json request requires a type")
		}
		return define.JSONRequest{Schema: define.SchemaAt(d.Type, d.ImportPath)}, nil
	case "form_data":
		fields, err := toFields(d.Fields)
		if err != nil {
			return nil, err
		}
		return define.FormDataRequest{Fields: fields}, nil
	case "url_encoded":
		fields, err := toFields(d.Fields)
		if err != nil {
			return nil, err
		}
		return define.URLEncodedRequest{Fields: fields}, nil
	case "text":
		return define.TextRequest{ContentType: d.ContentType}, nil
	case "binary":
		return define.BinaryRequest{ContentType: d.ContentType}, nil
	default:
		return nil, fmt.Errorf("unknown request kind %q", d.Kind)
	}
}

func (d *responseDoc) toResponse() (define.Response, error) {
	if d == nil {
		return define.EmptyResponse{}, nil
	}
	switch d.Kind {
	case "json":
		if d.Type == "" {
			return nil, errors.New("json response requires a type")
		}
		return define.JSONResponse{Schema: define.SchemaAt(d.Type, d.ImportPath)}, nil
	case "text":
		return define.TextResponse{}, nil
	case "binary":
		return define.BinaryResponse{}, nil
	case "", "empty":
		return define.EmptyResponse{}, nil
	default:
		return nil, fmt.Errorf("unknown response kind %q", d.Kind)
	}
}

func toFields(docs []fieldDoc) ([]define.FormField, error) {
	fields := make([]define.FormField, 0, len(docs))
	for _, fd := range docs {
		if fd.Name == "" {
			return nil, errors.New("form field missing name")
		}
		var field define.FormField
		switch fd.Kind {
		case "", "text":
			field = define.NewTextField(fd.Name)
		case "file":
			field = define.NewFileField(fd.Name, fd.Accept...)
		case "files":
			field = define.NewFilesFieldBounded(fd.Name, fd.Accept, fd.Min, fd.Max)
		case "json":
			if fd.Type == "" {
				return nil, fmt.Errorf("form field %q: json kind requires a type", fd.Name)
			}
			field = define.NewJSONField(fd.Name, define.SchemaAt(fd.Type, fd.ImportPath))
		default:
			return nil, fmt.Errorf("form field %q: unknown kind %q", fd.Name, fd.Kind)
		}
		if fd.Optional {
			field = field.Optional()
		}
		if fd.Description != "" {
			field = field.WithDescription(fd.Description)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func toHeaders(docs []headerDoc) []define.Header {
	if len(docs) == 0 {
		return nil
	}
	headers := make([]define.Header, len(docs))
	for i, hd := range docs {
		headers[i] = define.Header{Name: hd.Name, Value: hd.Value}
	}
	return headers
}
