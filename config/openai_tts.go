package config

import (
	"fmt"
	"os"
)

type OpenAITtsConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
	Voice  string
}

func GetOpenAITtsConfig() (*OpenAITtsConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	return &OpenAITtsConfig{
		ApiUrl: getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		ApiKey: apiKey,
		Model:  getEnv("OPENAI_TTS_MODEL", "tts-1"),
		Voice:  getEnv("OPENAI_TTS_VOICE", "alloy"),
	}, nil
}
