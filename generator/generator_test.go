package generator

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/internal/issues"
)

func speechAPI() *define.RestAPI {
	return &define.RestAPI{
		Name:        "Speech",
		Description: "Speech synthesis API",
		BaseURL:     "https://api.speech.example",
		Auth:        define.BearerToken{},
		EnvAuth:     []string{"SPEECH_KEY_A", "SPEECH_KEY_B"},
		Headers:     []define.Header{{Name: "Accept", Value: "application/json"}},
		Endpoints: []define.Endpoint{
			{
				ID:          "CreateSpeech",
				Method:      define.Post,
				Path:        "/speech/{voice_id}",
				Description: "Synthesize speech for a voice.",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateSpeechBody")},
				Response:    define.BinaryResponse{},
				Headers:     []define.Header{{Name: "Accept", Value: "audio/mpeg"}},
			},
			{
				ID:          "ListVoices",
				Method:      define.Get,
				Path:        "/voices",
				Description: "List available voices.",
				Response:    define.JSONResponse{Schema: define.NewSchema("VoiceList")},
			},
			{
				ID:          "DeleteVoice",
				Method:      define.Delete,
				Path:        "/voices/{voice_id}",
				Description: "Delete a voice.",
				Response:    define.EmptyResponse{},
			},
		},
	}
}

func runDry(t *testing.T, apis ...*define.RestAPI) *Result {
	t.Helper()
	result, err := Run(WithAPIs(apis...), WithDryRun(true))
	require.NoError(t, err)
	return result
}

func fileContent(t *testing.T, result *Result, name string) string {
	t.Helper()
	file := result.GetFile(name)
	require.NotNil(t, file, "expected generated file %s", name)
	return string(file.Content)
}

func TestRunDryRunProducesExpectedFiles(t *testing.T) {
	result := runDry(t, speechAPI())

	var names []string
	for _, f := range result.Files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"shared.go", "doc.go", "speech.go", "go.mod"}, names)
	assert.False(t, result.Written)
	assert.Equal(t, "schema", result.PackageName)
}

func TestEveryGeneratedGoFileReparses(t *testing.T) {
	result := runDry(t, speechAPI())
	for _, file := range result.Files {
		if !strings.HasSuffix(file.Name, ".go") {
			continue
		}
		fset := token.NewFileSet()
		_, err := parser.ParseFile(fset, file.Name, file.Content, parser.ParseComments)
		require.NoError(t, err, "generated file %s must reparse", file.Name)
		assert.True(t, strings.HasPrefix(string(file.Content), "// Code generated by schematic. DO NOT EDIT."))
	}
}

func TestGeneratedPathParamOrder(t *testing.T) {
	api := &define.RestAPI{
		Name:    "Pairs",
		BaseURL: "https://api.example.com",
		Auth:    define.AuthNone{},
		Endpoints: []define.Endpoint{{
			ID:       "Compare",
			Method:   define.Get,
			Path:     "/a/{x}/b/{y}",
			Response: define.EmptyResponse{},
		}},
	}
	src := fileContent(t, runDry(t, api), "pairs.go")

	xAt := strings.Index(src, "X string")
	yAt := strings.Index(src, "Y string")
	require.Positive(t, xAt)
	require.Positive(t, yAt)
	assert.Less(t, xAt, yAt, "path parameter fields appear in extraction order")

	assert.Contains(t, src, `fmt.Sprintf("/a/%[1]s/b/%[2]s", r.X, r.Y)`)
	assert.Contains(t, src, "func NewCompareRequest(x string, y string) CompareRequest")
}

func TestGeneratedDuplicatePlaceholderSharesField(t *testing.T) {
	api := &define.RestAPI{
		Name:    "Dup",
		BaseURL: "https://api.example.com",
		Auth:    define.AuthNone{},
		Endpoints: []define.Endpoint{{
			ID:       "Mirror",
			Method:   define.Get,
			Path:     "/pairs/{id}/compare/{id}",
			Response: define.EmptyResponse{},
		}},
	}
	src := fileContent(t, runDry(t, api), "dup.go")

	assert.Contains(t, src, `fmt.Sprintf("/pairs/%[1]s/compare/%[1]s", r.Id)`)
	assert.Equal(t, 1, strings.Count(src, "Id string"), "duplicate placeholder maps to one field")
}

func TestBinaryEndpointRoutesToBytesTerminal(t *testing.T) {
	api := &define.RestAPI{
		Name:        "Files",
		Description: "File storage API",
		BaseURL:     "https://files.example.com",
		Auth:        define.AuthNone{},
		Endpoints: []define.Endpoint{{
			ID:          "DownloadFile",
			Method:      define.Get,
			Path:        "/files/{file_id}",
			Description: "Download a file's raw contents.",
			Response:    define.BinaryResponse{},
		}},
	}
	src := fileContent(t, runDry(t, api), "files.go")

	// The binary endpoint's dispatch goes through the bytes terminal and
	// its generated source contains no JSON decode at all.
	assert.Contains(t, src, "func (c *Files) DownloadFile(ctx context.Context, req DownloadFileRequest) ([]byte, error)")
	assert.Contains(t, src, "c.RequestBytes(ctx, req)")
	assert.Contains(t, src, "io.ReadAll(resp.Body)")
	assert.NotContains(t, src, "json.NewDecoder")
	assert.NotContains(t, src, "RequestText")
}

func TestResponseKindTerminalsMatchDeclarations(t *testing.T) {
	src := fileContent(t, runDry(t, speechAPI()), "speech.go")

	// JSON, binary, and empty kinds are declared; text is not.
	assert.Contains(t, src, "func (c *Speech) Request(ctx context.Context, req SpeechRequest, out any) error")
	assert.Contains(t, src, "func (c *Speech) RequestBytes(ctx context.Context, req SpeechRequest) ([]byte, error)")
	assert.Contains(t, src, "func (c *Speech) RequestEmpty(ctx context.Context, req SpeechRequest) error")
	assert.NotContains(t, src, "RequestText")

	// Convenience methods exist only for non-JSON endpoints.
	assert.Contains(t, src, "func (c *Speech) CreateSpeech(ctx context.Context, req CreateSpeechRequest) ([]byte, error)")
	assert.Contains(t, src, "func (c *Speech) DeleteVoice(ctx context.Context, req DeleteVoiceRequest) error")
	assert.NotContains(t, src, "func (c *Speech) ListVoices(")
}

func TestGeneratedRequestUnion(t *testing.T) {
	src := fileContent(t, runDry(t, speechAPI()), "speech.go")

	assert.Contains(t, src, "type SpeechRequest interface {")
	assert.Contains(t, src, "isSpeechRequest()")
	assert.Contains(t, src, "func (CreateSpeechRequest) isSpeechRequest() {}")
	assert.Contains(t, src, "func (ListVoicesRequest) isSpeechRequest() {}")
	assert.Contains(t, src, "func (DeleteVoiceRequest) isSpeechRequest() {}")
	assert.Contains(t, src, "func speechRequestParts(req SpeechRequest) (RequestParts, error)")
	assert.Contains(t, src, "case CreateSpeechRequest:")
	assert.Contains(t, src, "unhandled request type")
}

func TestBearerAuthGeneration(t *testing.T) {
	src := fileContent(t, runDry(t, speechAPI()), "speech.go")

	assert.Contains(t, src, `resolveEnvCredential([]string{"SPEECH_KEY_A", "SPEECH_KEY_B"})`)
	assert.Contains(t, src, `"Bearer "+token`)
}

func TestAPIKeyAuthGeneration(t *testing.T) {
	api := speechAPI()
	api.Auth = define.APIKey{Header: "xi-api-key"}
	src := fileContent(t, runDry(t, api), "speech.go")

	assert.Contains(t, src, `httpReq.Header.Set("xi-api-key", key)`)
	assert.NotContains(t, src, "Bearer")
}

func TestBasicAuthGeneration(t *testing.T) {
	api := &define.RestAPI{
		Name:        "Broker",
		BaseURL:     "https://broker.example.com",
		Auth:        define.Basic{},
		EnvUsername: "BROKER_USER",
		EnvPassword: "BROKER_PASS",
		Endpoints: []define.Endpoint{{
			ID:       "ListClients",
			Method:   define.Get,
			Path:     "/clients",
			Response: define.JSONResponse{Schema: define.NewSchema("ClientPage")},
		}},
	}
	src := fileContent(t, runDry(t, api), "broker.go")

	assert.Contains(t, src, `resolveBasicCredentials("BROKER_USER", "BROKER_PASS")`)
	assert.Contains(t, src, "httpReq.SetBasicAuth(username, password)")
}

func TestHeaderMerging(t *testing.T) {
	src := fileContent(t, runDry(t, speechAPI()), "speech.go")

	// The endpoint override wins over the API-level Accept header.
	createSpeech := src[strings.Index(src, "func (r CreateSpeechRequest) parts()"):]
	createSpeech = createSpeech[:strings.Index(createSpeech, "}\n\n")+1]
	assert.Contains(t, createSpeech, `{"Accept", "audio/mpeg"}`)
	assert.NotContains(t, createSpeech, `{"Accept", "application/json"}`)

	// Endpoints without overrides inherit the API header.
	listVoices := src[strings.Index(src, "func (r ListVoicesRequest) parts()"):]
	assert.Contains(t, listVoices[:400], `{"Accept", "application/json"}`)
}

func TestFormDataGeneration(t *testing.T) {
	api := &define.RestAPI{
		Name:    "Transcribe",
		BaseURL: "https://api.example.com",
		Auth:    define.AuthNone{},
		Endpoints: []define.Endpoint{{
			ID:     "CreateTranscription",
			Method: define.Post,
			Path:   "/transcriptions",
			Request: define.FormDataRequest{Fields: []define.FormField{
				define.NewTextField("model"),
				define.NewTextField("language").Optional(),
				define.NewFileField("file", "audio/mpeg"),
				define.NewFilesField("extra_files").Optional(),
				define.NewJSONField("settings", define.NewSchema("TranscriptionSettings")),
			}},
			Response: define.JSONResponse{Schema: define.NewSchema("Transcription")},
		}},
	}
	src := fileContent(t, runDry(t, api), "transcribe.go")

	assert.Regexp(t, `Model\s+string`, src)
	assert.Regexp(t, `Language\s+\*string`, src)
	assert.Regexp(t, `File\s+FileUpload`, src)
	assert.Regexp(t, `ExtraFiles\s+\[\]FileUpload`, src)

	assert.Contains(t, src, `TextPart("model", r.Model)`)
	assert.Contains(t, src, "if r.Language != nil {")
	assert.Contains(t, src, `TextPart("language", *r.Language)`)
	assert.Contains(t, src, `FilePart("file", r.File)`)
	assert.Contains(t, src, "if len(r.ExtraFiles) > 0 {")
	assert.Contains(t, src, `JSONPart("settings", r.Settings)`)
	assert.Contains(t, src, "MultipartPayload(parts...)")
}

func TestURLEncodedGeneration(t *testing.T) {
	api := &define.RestAPI{
		Name:    "Forms",
		BaseURL: "https://api.example.com",
		Auth:    define.AuthNone{},
		Endpoints: []define.Endpoint{{
			ID:     "SubmitForm",
			Method: define.Post,
			Path:   "/submit",
			Request: define.URLEncodedRequest{Fields: []define.FormField{
				define.NewTextField("name"),
				define.NewTextField("note").Optional(),
			}},
			Response: define.EmptyResponse{},
		}},
	}
	src := fileContent(t, runDry(t, api), "forms.go")

	assert.Contains(t, src, "form := url.Values{}")
	assert.Contains(t, src, `form.Set("name", r.Name)`)
	assert.Contains(t, src, "if r.Note != nil {")
	assert.Contains(t, src, "FormPayload(form)")
}

func TestSharedFileContents(t *testing.T) {
	result := runDry(t, speechAPI())
	src := fileContent(t, result, "shared.go")

	assert.Contains(t, src, "package schema")
	assert.Contains(t, src, "type APIError struct")
	assert.Contains(t, src, "type MissingCredentialError struct")
	assert.Contains(t, src, "type RequestParts struct")
	assert.Contains(t, src, "func resolveEnvCredential(")
	assert.NotContains(t, src, "package shared")
}

func TestManifestContents(t *testing.T) {
	result := runDry(t, speechAPI())
	assert.Equal(t, "module schema\n\ngo 1.24\n", fileContent(t, result, "go.mod"))

	custom, err := Run(WithAPIs(speechAPI()), WithDryRun(true),
		WithPackageName("clients"), WithManifestModule("example.com/clients"))
	require.NoError(t, err)
	assert.Equal(t, "module example.com/clients\n\ngo 1.24\n", fileContent(t, custom, "go.mod"))
	assert.Contains(t, fileContent(t, custom, "shared.go"), "package clients")
}

func TestIdempotentRegeneration(t *testing.T) {
	first := runDry(t, speechAPI())
	second := runDry(t, speechAPI())

	require.Len(t, second.Files, len(first.Files))
	for i := range first.Files {
		assert.Equal(t, first.Files[i].Name, second.Files[i].Name)
		assert.Equal(t, string(first.Files[i].Content), string(second.Files[i].Content),
			"regeneration must be byte-identical for %s", first.Files[i].Name)
	}
}

func TestValidationRefusalLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	api := speechAPI()
	api.RequestSuffix = "Req!"

	_, err := Run(WithAPIs(api), WithOutputDir(dir))
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.False(t, valErr.Report.Ok())

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no generation occurs when validation fails")
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	result, err := Run(WithAPIs(speechAPI()), WithOutputDir(dir))
	require.NoError(t, err)
	assert.True(t, result.Written)

	for _, file := range result.Files {
		data, readErr := os.ReadFile(filepath.Join(dir, file.Name))
		require.NoError(t, readErr)
		assert.Equal(t, file.Content, data)
	}
}

func TestRunBatchSortsModules(t *testing.T) {
	zebra := &define.RestAPI{Name: "Zebra", BaseURL: "https://z.example.com", Auth: define.AuthNone{}}
	alpha := &define.RestAPI{Name: "Alpha", BaseURL: "https://a.example.com", Auth: define.AuthNone{}}

	result := runDry(t, zebra, alpha)

	var goFiles []string
	for _, f := range result.Files {
		if f.Name != "shared.go" && f.Name != "doc.go" && strings.HasSuffix(f.Name, ".go") {
			goFiles = append(goFiles, f.Name)
		}
	}
	assert.Equal(t, []string{"alpha.go", "zebra.go"}, goFiles, "output order is stable regardless of input order")
}

func TestExplicitModuleSharingEmitsOneFile(t *testing.T) {
	basic := &define.RestAPI{
		Name:          "BrokerBasic",
		BaseURL:       "http://localhost:18083/api/v5",
		Auth:          define.Basic{},
		EnvUsername:   "BROKER_KEY",
		EnvPassword:   "BROKER_SECRET",
		ModulePath:    "broker",
		RequestSuffix: "BasicRequest",
		Endpoints: []define.Endpoint{{
			ID:       "ListNodes",
			Method:   define.Get,
			Path:     "/nodes",
			Response: define.JSONResponse{Schema: define.NewSchema("NodeList")},
		}},
	}
	bearer := &define.RestAPI{
		Name:          "BrokerBearer",
		BaseURL:       "http://localhost:18083/api/v5",
		Auth:          define.BearerToken{},
		EnvAuth:       []string{"BROKER_TOKEN"},
		ModulePath:    "broker",
		RequestSuffix: "BearerRequest",
		Endpoints: []define.Endpoint{{
			ID:       "ListNodes",
			Method:   define.Get,
			Path:     "/nodes",
			Response: define.JSONResponse{Schema: define.NewSchema("NodeList")},
		}},
	}

	result := runDry(t, basic, bearer)

	var names []string
	for _, f := range result.Files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"shared.go", "doc.go", "broker.go", "go.mod"}, names)

	src := fileContent(t, result, "broker.go")
	assert.Contains(t, src, "type BrokerBasic struct")
	assert.Contains(t, src, "type BrokerBearer struct")
	// Distinct suffixes keep the shared module free of wrapper collisions.
	assert.Contains(t, src, "ListNodesBasicRequest struct")
	assert.Contains(t, src, "ListNodesBearerRequest struct")
}

func TestRunConfigErrors(t *testing.T) {
	_, err := Run(WithDryRun(true))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)

	_, err = Run(WithAPIs(speechAPI()))
	require.ErrorAs(t, err, &cfgErr)
}

func TestRunMalformedPathIsDefinitionError(t *testing.T) {
	api := &define.RestAPI{
		Name:    "Bad",
		BaseURL: "https://api.example.com",
		Auth:    define.AuthNone{},
		Endpoints: []define.Endpoint{{
			ID:       "Broken",
			Method:   define.Get,
			Path:     "/broken/{",
			Response: define.EmptyResponse{},
		}},
	}

	// Validation catches it first and reports it.
	_, err := Run(WithAPIs(api), WithDryRun(true))
	require.Error(t, err)

	// Extraction surfaces the same problem as a DefinitionError.
	_, err = planEndpoint(api, &api.Endpoints[0], "Request")
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, "Bad", defErr.API)
	assert.Equal(t, "Broken", defErr.Endpoint)
}

func TestExternalSchemaImport(t *testing.T) {
	api := &define.RestAPI{
		Name:    "Models",
		BaseURL: "https://api.example.com",
		Auth:    define.AuthNone{},
		Endpoints: []define.Endpoint{{
			ID:       "CreateModel",
			Method:   define.Post,
			Path:     "/models",
			Request:  define.JSONRequest{Schema: define.SchemaAt("ModelSpec", "github.com/example/modeltypes")},
			Response: define.JSONResponse{Schema: define.NewSchema("Model")},
		}},
	}
	src := fileContent(t, runDry(t, api), "models.go")
	assert.Contains(t, src, `"github.com/example/modeltypes"`)
	assert.Regexp(t, `Body\s+modeltypes\.ModelSpec`, src)
}

func TestRunRejectsCrossModuleNameCollisions(t *testing.T) {
	alpha := simpleAPI("Alpha", jsonEndpoint("ListModels", "", "ModelList"))
	beta := simpleAPI("Beta", jsonEndpoint("ListModels", "", "ModelList"))

	// Generated separately the two are fine, so validation alone passes.
	require.True(t, Validate(alpha, beta).Ok())

	// One run emits one package, where both would declare ListModelsRequest.
	_, err := Run(WithAPIs(alpha, beta), WithDryRun(true))
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, codesOf(valErr.Report), issues.CodeDuplicateGeneratedName)

	found := false
	for _, issue := range valErr.Report.Issues {
		if issue.Code == issues.CodeDuplicateGeneratedName {
			assert.Equal(t, "ListModelsRequest", issue.Value)
			found = true
		}
	}
	assert.True(t, found)
}

func TestGeneratedDispatchSetsUserAgent(t *testing.T) {
	src := fileContent(t, runDry(t, speechAPI()), "speech.go")
	assert.Contains(t, src, `httpReq.Header.Set("User-Agent", "`+schematic.UserAgent()+`")`)
}
