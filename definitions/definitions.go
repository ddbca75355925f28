// Package definitions contains ready-made REST API definitions built on the
// define package. Each API lives in its own file and is exposed both as a
// constructor and through the registry used by the command line tool.
//
// Available APIs:
//
//   - Anthropic: Messages API for Claude AI and agent tool use
//   - OpenAI: Models API
//   - ElevenLabs: TTS and voice management
//   - HuggingFaceHub: model and dataset discovery
//   - OllamaNative / OllamaOpenAI: local LLM inference
//   - EmqxBasic / EmqxBearer: MQTT broker management, two auth variants
package definitions

import (
	"sort"
	"strings"

	"github.com/yankeeinlondon/schematic/define"
)

// All returns every bundled API definition in a stable order. Each call
// constructs fresh values, so callers may mutate the results freely.
func All() []*define.RestAPI {
	return []*define.RestAPI{
		Anthropic(),
		ElevenLabs(),
		EmqxBasic(),
		EmqxBearer(),
		HuggingFaceHub(),
		OllamaNative(),
		OllamaOpenAI(),
		OpenAI(),
	}
}

// Lookup returns the bundled definition whose name matches, ignoring case.
func Lookup(name string) (*define.RestAPI, bool) {
	for _, api := range All() {
		if strings.EqualFold(api.Name, name) {
			return api, true
		}
	}
	return nil, false
}

// Names returns the names of all bundled definitions, sorted.
func Names() []string {
	apis := All()
	names := make([]string, len(apis))
	for i, api := range apis {
		names[i] = api.Name
	}
	sort.Strings(names)
	return names
}
