package config

import (
	"fmt"
	"strings"
)

type SpeechProvider string

const (
	GoogleTranslateSpeechProvider SpeechProvider = "gtts"
	ElevenLabsSpeechProvider      SpeechProvider = "elevenlabs"
	OpenAISpeechProvider          SpeechProvider = "openai"
)

const DefaultGoogleTranslateTtsUrl = "https://translate.google.com/translate_tts"

type SpeechConfig struct {
	Provider SpeechProvider
}

func GetSpeechConfig() (*SpeechConfig, error) {
	provider := SpeechProvider(strings.ToLower(getEnv("SPEECH_PROVIDER", string(GoogleTranslateSpeechProvider))))
	switch provider {
	case GoogleTranslateSpeechProvider, ElevenLabsSpeechProvider, OpenAISpeechProvider:
		return &SpeechConfig{Provider: provider}, nil
	default:
		return nil, fmt.Errorf("SPEECH_PROVIDER must be one of gtts, elevenlabs, openai, got %q", provider)
	}
}

type GoogleTranslateTtsConfig struct {
	ApiUrl   string
	Language string
}

func GetGoogleTranslateTtsConfig() *GoogleTranslateTtsConfig {
	return &GoogleTranslateTtsConfig{
		ApiUrl:   getEnv("GTTS_URL", DefaultGoogleTranslateTtsUrl),
		Language: getEnv("GTTS_LANG", "en"),
	}
}
