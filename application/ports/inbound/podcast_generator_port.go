package inbound

import (
	"context"
	"podcast-generator/domain"
)

type GeneratePodcastParams struct {
	SessionID    string
	Topic        string
	Style        domain.PromptStyle
	Config       domain.ModelConfig
	OnTransition func(state domain.GenerationState)
}

type PodcastGeneratorPort interface {
	// Ready reports the persistent configuration error, if any, that disables generation.
	Ready() error
	Generate(ctx context.Context, params GeneratePodcastParams) (domain.Session, error)
	Session(id string) domain.Session
}
