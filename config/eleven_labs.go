package config

import (
	"fmt"
	"os"
	"strconv"
)

const DefaultElevenLabsApiUrl = "https://api.elevenlabs.io/v1/text-to-speech"

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	VoiceId         string
	Stability       float64
	SimilarityBoost float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	voiceId := os.Getenv("ELEVEN_LABS_VOICE_ID")
	if voiceId == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_VOICE_ID must be set")
	}
	stabilityVal, err := strconv.ParseFloat(getEnv("ELEVEN_LABS_STABILITY", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELEVEN_LABS_STABILITY: %w", err)
	}
	similarityBoostVal, err := strconv.ParseFloat(getEnv("ELEVEN_LABS_SIMILARITY_BOOST", "0.75"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELEVEN_LABS_SIMILARITY_BOOST: %w", err)
	}

	return &ElevenLabsConfig{
		ApiUrl:          getEnv("ELEVEN_LABS_API_URL", DefaultElevenLabsApiUrl),
		ApiKey:          apiKey,
		ModelId:         getEnv("ELEVEN_LABS_MODEL_ID", "eleven_multilingual_v2"),
		VoiceId:         voiceId,
		Stability:       stabilityVal,
		SimilarityBoost: similarityBoostVal,
	}, nil
}
