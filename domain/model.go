package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	MaxTokens          = 1000
	DefaultTemperature = 0.7
)

type Model string

const (
	Llama32_1BPreview Model = "llama-3.2-1b-preview"
	Llama3_70B        Model = "llama3-70b-8192"
	Llama3_8B         Model = "llama3-8b-8192"
	Mixtral8x7B       Model = "mixtral-8x7b-32768"
	Gemma2_9B         Model = "gemma2-9b-it"
	Llava15_7B        Model = "llava-v1.5-7b-4096-preview"
)

// SupportedModels is ordered the way the models are offered to the user; the first entry is the default.
var SupportedModels = []Model{
	Llama32_1BPreview,
	Llama3_70B,
	Llama3_8B,
	Mixtral8x7B,
	Gemma2_9B,
	Llava15_7B,
}

var modelDisplayNames = map[Model]string{
	Llama32_1BPreview: "Llama 3.2 1B (Preview)",
	Llama3_70B:        "Llama 3 70B",
	Llama3_8B:         "Llama 3 8B",
	Mixtral8x7B:       "Mixtral 8x7B",
	Gemma2_9B:         "Gemma 2 9B",
	Llava15_7B:        "LLaVA 1.5 7B",
}

func DefaultModel() Model {
	return SupportedModels[0]
}

// ParseModel accepts either the model id or its display name.
func ParseModel(value string) (Model, error) {
	value = strings.TrimSpace(value)
	for _, m := range SupportedModels {
		if string(m) == value || strings.EqualFold(modelDisplayNames[m], value) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, value)
}

func (m Model) ID() string {
	return string(m)
}

func (m Model) DisplayName() string {
	if name, ok := modelDisplayNames[m]; ok {
		return name
	}
	return string(m)
}

// ModelConfig is immutable once built; use NewModelConfig to get a validated value.
type ModelConfig struct {
	model       Model
	temperature float64
}

func NewModelConfig(model Model, temperature float64) (ModelConfig, error) {
	if _, ok := modelDisplayNames[model]; !ok {
		return ModelConfig{}, fmt.Errorf("%w: %q", ErrUnknownModel, string(model))
	}
	if math.IsNaN(temperature) || temperature < 0 || temperature > 1 {
		return ModelConfig{}, fmt.Errorf("%w: %v", ErrTemperatureOutOfRange, temperature)
	}
	return ModelConfig{
		model:       model,
		temperature: temperature,
	}, nil
}

func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		model:       DefaultModel(),
		temperature: DefaultTemperature,
	}
}

func (c ModelConfig) Model() Model {
	return c.model
}

func (c ModelConfig) Temperature() float64 {
	return c.temperature
}

func (c ModelConfig) MaxTokens() int {
	return MaxTokens
}
