package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/config"

	"github.com/rs/zerolog/log"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSynthesizer struct {
	ContentFetcher
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewElevenLabsSynthesizer(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		ContentFetcher:   contentFetcher,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (e *elevenLabsSynthesizer) Provider() string {
	return string(config.ElevenLabsSpeechProvider)
}

func (e *elevenLabsSynthesizer) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	req, err := e.getRequest(ctx, text)
	if err != nil {
		log.Error().Err(err).Str("action", "Fetching Audio").Int("textLength", len(text)).Msg("Failed to construct the HTTP request for audio fetching")
		return nil, err
	}

	payload, err := e.FetchContent(req)
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(payload)), nil
}

func (e *elevenLabsSynthesizer) getRequest(ctx context.Context, text string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: e.elevenLabsConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       e.elevenLabsConfig.Stability,
			SimilarityBoost: e.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		log.Error().Err(err).Str("action", "Marshalling JSON").Msg("Failed to marshal the request body for ElevenLabs API")
		return nil, err
	}

	endpoint := e.elevenLabsConfig.ApiUrl + "/" + e.elevenLabsConfig.VoiceId
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Error().Err(err).Str("action", "Creating HTTP Request").Str("URL", endpoint).Msg("Failed to create the HTTP POST request")
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       "audio/mpeg",
		"xi-api-key":   e.elevenLabsConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
