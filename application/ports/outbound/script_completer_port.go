package outbound

import (
	"context"
	"podcast-generator/domain"
)

type CompleteScriptRequest struct {
	SystemInstruction string
	Prompt            string
	Config            domain.ModelConfig
}

type CompleteScriptResponse struct {
	Text      string
	Truncated bool
}

type ScriptCompleterPort interface {
	Complete(ctx context.Context, req CompleteScriptRequest) (*CompleteScriptResponse, error)
}
