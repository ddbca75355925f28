package define

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestMethodValid(t *testing.T) {
	for _, m := range Methods() {
		assert.True(t, m.Valid(), "method %s should be valid", m)
	}
	assert.False(t, RestMethod("TRACE").Valid())
	assert.False(t, RestMethod("get").Valid(), "methods are case sensitive")
	assert.False(t, RestMethod("").Valid())
}

func TestAuthHeader(t *testing.T) {
	tests := []struct {
		name string
		auth AuthStrategy
		want string
	}{
		{"none", AuthNone{}, ""},
		{"bearer default", BearerToken{}, "Authorization"},
		{"bearer custom", BearerToken{Header: "X-Token"}, "X-Token"},
		{"api key default", APIKey{}, "Authorization"},
		{"api key custom", APIKey{Header: "xi-api-key"}, "xi-api-key"},
		{"basic", Basic{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthHeader(tt.auth))
		})
	}
}

func TestFormFieldBuilders(t *testing.T) {
	f := NewTextField("model")
	assert.Equal(t, "model", f.Name)
	assert.True(t, f.Required)
	assert.IsType(t, TextField{}, f.Kind)

	f = NewFileField("file", ".mp3", ".wav")
	kind, ok := f.Kind.(FileField)
	require.True(t, ok)
	assert.Equal(t, []string{".mp3", ".wav"}, kind.Accept)

	f = NewFilesFieldBounded("images", []string{".png"}, 1, 4)
	multi, ok := f.Kind.(FilesField)
	require.True(t, ok)
	assert.Equal(t, 1, multi.Min)
	assert.Equal(t, 4, multi.Max)

	f = NewJSONField("metadata", NewSchema("Metadata"))
	jf, ok := f.Kind.(JSONField)
	require.True(t, ok)
	assert.Equal(t, "Metadata", jf.Schema.TypeName)
}

func TestFormFieldOptionalDoesNotMutate(t *testing.T) {
	base := NewTextField("prompt")
	opt := base.Optional().WithDescription("optional prompt")

	assert.True(t, base.Required, "builder methods must copy")
	assert.Empty(t, base.Description)
	assert.False(t, opt.Required)
	assert.Equal(t, "optional prompt", opt.Description)
}

func TestSchemaConstructors(t *testing.T) {
	s := NewSchema("ChatRequest")
	assert.Equal(t, "ChatRequest", s.TypeName)
	assert.Empty(t, s.ImportPath)

	s = SchemaAt("Model", "github.com/example/models")
	assert.Equal(t, "github.com/example/models", s.ImportPath)
}

func TestMergeHeaders(t *testing.T) {
	apiHeaders := []Header{
		{Name: "Accept", Value: "application/json"},
		{Name: "X-Client", Value: "schematic"},
	}
	epHeaders := []Header{
		{Name: "accept", Value: "audio/mpeg"},
		{Name: "X-Request-Id", Value: "abc"},
	}

	merged := MergeHeaders(apiHeaders, epHeaders)
	require.Len(t, merged, 3)
	assert.Equal(t, Header{Name: "X-Client", Value: "schematic"}, merged[0])
	assert.Equal(t, Header{Name: "accept", Value: "audio/mpeg"}, merged[1], "endpoint header wins case-insensitively")
	assert.Equal(t, Header{Name: "X-Request-Id", Value: "abc"}, merged[2])
}

func TestMergeHeadersEmpty(t *testing.T) {
	assert.Empty(t, MergeHeaders(nil, nil))

	api := []Header{{Name: "Accept", Value: "application/json"}}
	merged := MergeHeaders(api, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, api[0], merged[0])
}
