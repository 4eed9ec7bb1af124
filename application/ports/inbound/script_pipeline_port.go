package inbound

import (
	"context"
	"podcast-generator/domain"
)

type RunPipelineParams struct {
	Prompt string
	Config domain.ModelConfig
	// OnTransition, when set, is called synchronously on every state change.
	OnTransition func(state domain.GenerationState)
}

type ScriptPipelinePort interface {
	// Run always returns the generation reached so far, even when err is non-nil.
	Run(ctx context.Context, params RunPipelineParams) (domain.Generation, error)
}
