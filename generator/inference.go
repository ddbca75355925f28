// Module path inference from API names.
//
// When a definition sets no explicit ModulePath, the generated file name is
// inferred conservatively: only names ending in a recognized variant suffix
// ("OllamaNative", "HuggingFaceHub") are stripped to their base; everything
// else falls back to the lowercased API name.

package generator

import (
	"strings"
	"unicode"

	"github.com/yankeeinlondon/schematic/define"
)

// variantSuffixes are trailing words that mark an API name as a variant of
// a base API. Only these trigger inference.
var variantSuffixes = []string{"Native", "Client", "Service", "Hub", "Api", "Sdk"}

// InferModulePath derives a module path from an API name when the name ends
// in a recognized variant suffix ("OllamaNative" yields "ollama"). The
// second return is false when no inference applies and the caller should
// fall back to the lowercased name.
func InferModulePath(apiName string) (string, bool) {
	words := splitCamelCase(apiName)
	if len(words) < 2 {
		return "", false
	}

	last := words[len(words)-1]
	recognized := false
	for _, suffix := range variantSuffixes {
		if last == suffix {
			recognized = true
			break
		}
	}
	if !recognized {
		return "", false
	}

	var b strings.Builder
	for _, w := range words[:len(words)-1] {
		b.WriteString(strings.ToLower(w))
	}
	return b.String(), true
}

// ModulePathFor resolves the module path for an API: the explicit override
// wins, then variant-suffix inference, then the lowercased name.
func ModulePathFor(api *define.RestAPI) string {
	if api.ModulePath != "" {
		return api.ModulePath
	}
	if inferred, ok := InferModulePath(api.Name); ok {
		return inferred
	}
	return strings.ToLower(api.Name)
}

// requestSuffixFor resolves the wrapper struct suffix, defaulting to
// "Request".
func requestSuffixFor(api *define.RestAPI) string {
	if api.RequestSuffix != "" {
		return api.RequestSuffix
	}
	return defaultRequestSuffix
}

// defaultRequestSuffix is appended to endpoint ids to name wrapper structs.
const defaultRequestSuffix = "Request"

// splitCamelCase splits a CamelCase name into words, keeping acronym runs
// together: "HTTPClient" yields ["HTTP", "Client"], "OpenAI" yields
// ["Open", "AI"].
func splitCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	runes := []rune(s)
	var words []string
	wordStart := 0

	for i := 1; i < len(runes); i++ {
		current := runes[i]
		prev := runes[i-1]

		newWord := unicode.IsUpper(current) &&
			(unicode.IsLower(prev) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(prev)))

		if newWord {
			if i > wordStart {
				words = append(words, string(runes[wordStart:i]))
			}
			wordStart = i
		}
	}

	if wordStart < len(runes) {
		words = append(words, string(runes[wordStart:]))
	}
	return words
}
