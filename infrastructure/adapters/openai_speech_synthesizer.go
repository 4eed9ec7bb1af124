package adapters

import (
	"context"
	"io"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/config"

	"github.com/sashabaranov/go-openai"
)

type openAISpeechSynthesizer struct {
	logger    outbound.LoggerPort
	client    *openai.Client
	ttsConfig *config.OpenAITtsConfig
}

func NewOpenAISpeechSynthesizer(ttsConfig *config.OpenAITtsConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	clientConfig := openai.DefaultConfig(ttsConfig.ApiKey)
	clientConfig.BaseURL = ttsConfig.ApiUrl
	return &openAISpeechSynthesizer{
		logger:    logger,
		client:    openai.NewClientWithConfig(clientConfig),
		ttsConfig: ttsConfig,
	}
}

func (o *openAISpeechSynthesizer) Provider() string {
	return string(config.OpenAISpeechProvider)
}

func (o *openAISpeechSynthesizer) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	res, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.ttsConfig.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(o.ttsConfig.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		o.logger.ErrorWithFields(err, "Speech request failed", map[string]interface{}{
			"model": o.ttsConfig.Model,
			"voice": o.ttsConfig.Voice,
		})
		return nil, err
	}
	return res, nil
}
