package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"podcast-generator/application/ports/inbound"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/domain"
	"strings"
)

const SystemInstruction = "You are an AI assistant that generates podcasts."

type scriptPipeline struct {
	logger      outbound.LoggerPort
	completer   outbound.ScriptCompleterPort
	synthesizer outbound.SpeechSynthesizerPort
}

func NewScriptPipeline(logger outbound.LoggerPort, completer outbound.ScriptCompleterPort,
	synthesizer outbound.SpeechSynthesizerPort) inbound.ScriptPipelinePort {
	return &scriptPipeline{
		logger:      logger,
		completer:   completer,
		synthesizer: synthesizer,
	}
}

func (p *scriptPipeline) Run(ctx context.Context, params inbound.RunPipelineParams) (domain.Generation, error) {
	generation := domain.NewGeneration()
	transition := func(state domain.GenerationState) {
		generation.State = state
		p.logger.DebugWithFields("Pipeline state changed", map[string]interface{}{
			"state": state,
			"model": params.Config.Model(),
		})
		if params.OnTransition != nil {
			params.OnTransition(state)
		}
	}

	transition(domain.RequestingTextState)
	script, err := p.completeScript(ctx, params)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to generate podcast script", map[string]interface{}{
			"model": params.Config.Model(),
		})
		transition(domain.TextFailedState)
		return generation, err
	}
	generation.Script = script
	if script.Truncated {
		p.logger.WarnWithFields("Podcast script reached the token limit and may be cut off", map[string]interface{}{
			"model":      params.Config.Model(),
			"max_tokens": params.Config.MaxTokens(),
		})
	}
	transition(domain.TextReadyState)

	transition(domain.RequestingAudioState)
	audio, err := p.synthesize(ctx, script.Text)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to generate podcast audio", map[string]interface{}{
			"provider": p.synthesizer.Provider(),
		})
		transition(domain.AudioFailedState)
		return generation, err
	}
	generation.Audio = audio
	transition(domain.AudioReadyState)

	return generation, nil
}

func (p *scriptPipeline) completeScript(ctx context.Context, params inbound.RunPipelineParams) (*domain.ScriptResult, error) {
	res, err := p.completer.Complete(ctx, outbound.CompleteScriptRequest{
		SystemInstruction: SystemInstruction,
		Prompt:            params.Prompt,
		Config:            params.Config,
	})
	if err != nil {
		var completionErr *domain.CompletionError
		if errors.As(err, &completionErr) {
			return nil, completionErr
		}
		return nil, &domain.CompletionError{Model: params.Config.Model(), Err: err}
	}

	text := strings.TrimSpace(res.Text)
	if text == "" {
		return nil, &domain.CompletionError{Model: params.Config.Model(), Err: domain.ErrEmptyCompletion}
	}

	return &domain.ScriptResult{
		Text:      text,
		Truncated: res.Truncated,
	}, nil
}

func (p *scriptPipeline) synthesize(ctx context.Context, text string) (*domain.AudioResult, error) {
	stream, err := p.synthesizer.Synthesize(ctx, text)
	if err != nil {
		return nil, p.synthesisError(err)
	}
	defer func(stream io.ReadCloser) {
		err := stream.Close()
		if err != nil {
			p.logger.Error(err, "Failed to close the audio stream")
		}
	}(stream)

	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, stream); err != nil {
		return nil, p.synthesisError(err)
	}
	if buffer.Len() == 0 {
		return nil, p.synthesisError(domain.ErrNoAudio)
	}

	return domain.NewAudioResult(buffer.Bytes(), domain.AudioFormatMP3), nil
}

func (p *scriptPipeline) synthesisError(err error) error {
	var synthesisErr *domain.SynthesisError
	if errors.As(err, &synthesisErr) {
		return synthesisErr
	}
	return &domain.SynthesisError{Provider: p.synthesizer.Provider(), Err: err}
}
