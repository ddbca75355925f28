package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yankeeinlondon/schematic/define"
)

func TestInferModulePath(t *testing.T) {
	tests := []struct {
		name     string
		want     string
		inferred bool
	}{
		{"OllamaNative", "ollama", true},
		{"HuggingFaceHub", "huggingface", true},
		{"OpenAINative", "openai", true},
		{"HTTPClient", "http", true},
		{"MyService", "my", true},
		{"TestApi", "test", true},
		{"AwsSdk", "aws", true},
		// No recognized variant suffix: caller falls back to lowercasing.
		{"OpenAI", "", false},
		{"HuggingFace", "", false},
		{"ElevenLabs", "", false},
		{"Ollama", "", false},
		{"ollama", "", false},
		{"API", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InferModulePath(tt.name)
			assert.Equal(t, tt.inferred, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModulePathFor(t *testing.T) {
	// Explicit override wins over inference.
	api := &define.RestAPI{Name: "HuggingFaceHub", ModulePath: "hf"}
	assert.Equal(t, "hf", ModulePathFor(api))

	// Variant suffix triggers inference.
	api = &define.RestAPI{Name: "OllamaNative"}
	assert.Equal(t, "ollama", ModulePathFor(api))

	// Fallback is the lowercased name.
	api = &define.RestAPI{Name: "OpenAI"}
	assert.Equal(t, "openai", ModulePathFor(api))
}

func TestRequestSuffixFor(t *testing.T) {
	assert.Equal(t, "Request", requestSuffixFor(&define.RestAPI{Name: "A"}))
	assert.Equal(t, "Params", requestSuffixFor(&define.RestAPI{Name: "A", RequestSuffix: "Params"}))
}
