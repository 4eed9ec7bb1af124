package config

import (
	"fmt"
	"os"
)

const DefaultGroqApiUrl = "https://api.groq.com/openai/v1"

type GroqConfig struct {
	ApiUrl string
	ApiKey string
}

func GetGroqConfig() (*GroqConfig, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY must be set")
	}
	return &GroqConfig{
		ApiUrl: getEnv("GROQ_API_URL", DefaultGroqApiUrl),
		ApiKey: apiKey,
	}, nil
}
