// Package define provides the declarative model for describing REST APIs.
//
// A RestAPI value captures everything the generator needs to synthesize a
// typed client: the base URL, the authentication strategy, the names (never
// the values) of credential environment variables, and every endpoint with
// its request and response shapes.
//
// All values are plain data constructed once and read thereafter; nothing in
// this package mutates a definition after construction.
package define

import "strings"

// RestMethod is an HTTP method supported by REST endpoints.
type RestMethod string

// HTTP methods supported by REST APIs.
const (
	Get     RestMethod = "GET"
	Post    RestMethod = "POST"
	Put     RestMethod = "PUT"
	Patch   RestMethod = "PATCH"
	Delete  RestMethod = "DELETE"
	Head    RestMethod = "HEAD"
	Options RestMethod = "OPTIONS"
)

// Methods returns all supported HTTP methods in a stable order.
func Methods() []RestMethod {
	return []RestMethod{Get, Post, Put, Patch, Delete, Head, Options}
}

// Valid reports whether m is one of the supported HTTP methods.
func (m RestMethod) Valid() bool {
	switch m {
	case Get, Post, Put, Patch, Delete, Head, Options:
		return true
	}
	return false
}

// Header is a single HTTP header name/value pair. Ordering is preserved so
// generated request code is deterministic.
type Header struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// RestAPI is a complete REST API definition.
//
// The Name becomes the generated client struct name (e.g., "OpenAI" produces
// `type OpenAI struct` and the request union `OpenAIRequest`).
type RestAPI struct {
	// Name is the unique identifier for this API, used for generated
	// struct and union names. Should be PascalCase.
	Name string
	// Description is a human-readable description of the API.
	Description string
	// BaseURL is the base URL for all endpoints
	// (e.g., "https://api.openai.com/v1"). Endpoint paths are appended.
	BaseURL string
	// DocsURL links to the API documentation (optional).
	DocsURL string
	// Auth is the authentication strategy for this API.
	Auth AuthStrategy
	// EnvAuth lists environment variable names probed in order for the
	// bearer token or API key. The first variable that is set wins; if none
	// are set, generated requests fail with a missing-credential error that
	// names every probed variable.
	EnvAuth []string
	// EnvUsername names the environment variable holding the Basic auth
	// username. Only consulted when Auth is Basic.
	EnvUsername string
	// EnvPassword names the environment variable holding the Basic auth
	// password. Only consulted when Auth is Basic.
	EnvPassword string
	// Headers are default HTTP headers included with every request.
	// Endpoint-specific headers override these case-insensitively.
	Headers []Header
	// Endpoints are all endpoints defined for this API. Endpoint ids must
	// be unique within one API.
	Endpoints []Endpoint
	// ModulePath overrides the inferred module path for generated output.
	// APIs that should share one generated module must all set the same
	// explicit value.
	ModulePath string
	// RequestSuffix overrides the suffix appended to endpoint ids when
	// naming generated request structs. Defaults to "Request"; must be
	// alphanumeric.
	RequestSuffix string
}

// Endpoint is a single API endpoint definition.
//
// Paths support template parameters in curly braces ("/models/{model}");
// each distinct parameter becomes a leading field in the generated request
// struct, in order of first appearance.
type Endpoint struct {
	// ID identifies the endpoint and becomes the generated struct name
	// prefix and union variant. Should be PascalCase.
	ID string
	// Method is the HTTP method for this endpoint.
	Method RestMethod
	// Path is the path template (e.g., "/models/{model}").
	Path string
	// Description says what this endpoint does.
	Description string
	// Request describes the request body. Nil for endpoints without one
	// (typically GET and DELETE).
	Request Request
	// Response describes the expected response body.
	Response Response
	// Headers are endpoint-specific headers, merged over the API-level
	// headers with the endpoint winning on case-insensitive name matches.
	Headers []Header
}

// MergeHeaders combines API-level and endpoint-level headers. Endpoint
// headers win on case-insensitive name matches; surviving API headers keep
// their relative order and precede the endpoint headers.
func MergeHeaders(apiHeaders, endpointHeaders []Header) []Header {
	merged := make([]Header, 0, len(apiHeaders)+len(endpointHeaders))
	for _, h := range apiHeaders {
		overridden := false
		for _, eh := range endpointHeaders {
			if strings.EqualFold(eh.Name, h.Name) {
				overridden = true
				break
			}
		}
		if !overridden {
			merged = append(merged, h)
		}
	}
	merged = append(merged, endpointHeaders...)
	return merged
}
