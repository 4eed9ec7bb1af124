package adapters

import (
	"context"
	"errors"
	"math"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/domain"

	"github.com/sashabaranov/go-openai"
)

type groqScriptCompleter struct {
	logger   outbound.LoggerPort
	provider *GroqClientProvider
}

func NewGroqScriptCompleter(provider *GroqClientProvider, logger outbound.LoggerPort) outbound.ScriptCompleterPort {
	return &groqScriptCompleter{
		logger:   logger,
		provider: provider,
	}
}

func (g *groqScriptCompleter) Complete(ctx context.Context, req outbound.CompleteScriptRequest) (*outbound.CompleteScriptResponse, error) {
	model := req.Config.Model()

	client, err := g.provider.Client()
	if err != nil {
		return nil, err
	}

	res, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model.ID(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: requestTemperature(req.Config.Temperature()),
		MaxTokens:   req.Config.MaxTokens(),
	})
	if err != nil {
		completionErr := &domain.CompletionError{Model: model, StatusCode: statusCode(err), Err: err}
		g.logger.ErrorWithFields(err, "Chat completion request failed", map[string]interface{}{
			"model":  model,
			"status": completionErr.StatusCode,
		})
		return nil, completionErr
	}

	if len(res.Choices) == 0 {
		return nil, &domain.CompletionError{Model: model, Err: domain.ErrNoChoices}
	}

	choice := res.Choices[0]
	g.logger.DebugWithFields("Chat completion received", map[string]interface{}{
		"model":             model,
		"finish_reason":     choice.FinishReason,
		"completion_tokens": res.Usage.CompletionTokens,
	})

	return &outbound.CompleteScriptResponse{
		Text:      choice.Message.Content,
		Truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}

// requestTemperature keeps an explicit zero on the wire; go-openai drops a plain 0 as omitempty.
func requestTemperature(temperature float64) float32 {
	if temperature == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(temperature)
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
