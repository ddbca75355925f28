package definitions

import "github.com/yankeeinlondon/schematic/define"

// ElevenLabs returns the ElevenLabs text-to-speech and voice management API
// definition.
//
// The API key is probed from ELEVEN_LABS_API_KEY first, then
// ELEVENLABS_API_KEY, and sent via the xi-api-key header. Speech synthesis
// endpoints return raw audio bytes; voice management endpoints return JSON.
func ElevenLabs() *define.RestAPI {
	return &define.RestAPI{
		Name:        "ElevenLabs",
		Description: "ElevenLabs TTS and voice management API",
		BaseURL:     "https://api.elevenlabs.io",
		DocsURL:     "https://elevenlabs.io/docs/api-reference",
		Auth:        define.APIKey{Header: "xi-api-key"},
		EnvAuth:     []string{"ELEVEN_LABS_API_KEY", "ELEVENLABS_API_KEY"},
		Endpoints: []define.Endpoint{
			// Text-to-speech
			{
				ID:          "CreateSpeech",
				Method:      define.Post,
				Path:        "/v1/text-to-speech/{voice_id}",
				Description: "Converts text into speech and returns audio",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateSpeechBody")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "StreamSpeech",
				Method:      define.Post,
				Path:        "/v1/text-to-speech/{voice_id}/stream",
				Description: "Streams audio as it's generated",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateSpeechBody")},
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "CreateSpeechWithTimestamps",
				Method:      define.Post,
				Path:        "/v1/text-to-speech/{voice_id}/with-timestamps",
				Description: "Returns audio with character-level timing information",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateSpeechBody")},
				Response:    define.JSONResponse{Schema: define.NewSchema("SpeechWithTimestampsResponse")},
			},

			// Voice management
			{
				ID:          "ListVoices",
				Method:      define.Get,
				Path:        "/v2/voices",
				Description: "Lists all available voices",
				Response:    define.JSONResponse{Schema: define.NewSchema("ListVoicesResponse")},
			},
			{
				ID:          "GetVoice",
				Method:      define.Get,
				Path:        "/v1/voices/{voice_id}",
				Description: "Retrieves a voice by ID",
				Response:    define.JSONResponse{Schema: define.NewSchema("VoiceResponseModel")},
			},
			{
				ID:          "DeleteVoice",
				Method:      define.Delete,
				Path:        "/v1/voices/{voice_id}",
				Description: "Deletes a voice",
				Response:    define.JSONResponse{Schema: define.NewSchema("StatusResponse")},
			},

			// Voice settings
			{
				ID:          "GetDefaultVoiceSettings",
				Method:      define.Get,
				Path:        "/v1/voices/settings/default",
				Description: "Gets default voice settings",
				Response:    define.JSONResponse{Schema: define.NewSchema("VoiceSettings")},
			},
			{
				ID:          "GetVoiceSettings",
				Method:      define.Get,
				Path:        "/v1/voices/{voice_id}/settings",
				Description: "Gets voice settings for a specific voice",
				Response:    define.JSONResponse{Schema: define.NewSchema("VoiceSettings")},
			},
			{
				ID:          "UpdateVoiceSettings",
				Method:      define.Post,
				Path:        "/v1/voices/{voice_id}/settings/edit",
				Description: "Updates voice settings",
				Request:     define.JSONRequest{Schema: define.NewSchema("VoiceSettings")},
				Response:    define.JSONResponse{Schema: define.NewSchema("StatusResponse")},
			},

			// Voice samples
			{
				ID:          "GetVoiceSampleAudio",
				Method:      define.Get,
				Path:        "/v1/voices/{voice_id}/samples/{sample_id}/audio",
				Description: "Gets audio for a voice sample",
				Response:    define.BinaryResponse{},
			},
			{
				ID:          "DeleteVoiceSample",
				Method:      define.Delete,
				Path:        "/v1/voices/{voice_id}/samples/{sample_id}",
				Description: "Deletes a voice sample",
				Response:    define.JSONResponse{Schema: define.NewSchema("StatusResponse")},
			},
			{
				ID:          "AddVoiceSample",
				Method:      define.Post,
				Path:        "/v1/voices/{voice_id}/samples",
				Description: "Upload audio sample for voice cloning",
				Request: define.FormDataRequest{Fields: []define.FormField{
					define.NewFileField("audio", "audio/*").
						WithDescription("Audio file (mp3, wav, ogg, m4a)"),
					define.NewTextField("name").
						Optional().
						WithDescription("Name for the sample"),
				}},
				Response: define.JSONResponse{Schema: define.NewSchema("AddSampleResponse")},
			},

			// Sound effects
			{
				ID:          "CreateSoundEffect",
				Method:      define.Post,
				Path:        "/v1/sound-generation",
				Description: "Generates a sound effect from text",
				Request:     define.JSONRequest{Schema: define.NewSchema("CreateSoundEffectBody")},
				Response:    define.BinaryResponse{},
			},

			// Models
			{
				ID:          "ListModels",
				Method:      define.Get,
				Path:        "/v1/models",
				Description: "Lists all available models",
				Response:    define.JSONResponse{Schema: define.NewSchema("[]ModelInfo")},
			},
		},
	}
}
