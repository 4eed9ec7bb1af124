package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownModel          = errors.New("unknown model")
	ErrUnknownPromptStyle    = errors.New("unknown prompt style")
	ErrTemperatureOutOfRange = errors.New("temperature must be between 0 and 1")
	ErrEmptyCompletion       = errors.New("completion returned no text")
	ErrNoChoices             = errors.New("completion response has no choices")
	ErrGenerationInProgress  = errors.New("a generation is already in progress for this session")
	ErrSessionNotFound       = errors.New("session not found")
	ErrNoAudio               = errors.New("no audio has been generated for this session")
)

// ConfigurationError marks a missing or invalid setting that disables generation until the process is restarted.
type ConfigurationError struct {
	Setting string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Setting, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type CompletionError struct {
	Model      Model
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("script generation with %s failed (status %d): %v", e.Model, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("script generation with %s failed: %v", e.Model, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

type SynthesisError struct {
	Provider string
	Err      error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("audio generation with %s failed: %v", e.Provider, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
