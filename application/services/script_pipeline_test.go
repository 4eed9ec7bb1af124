package services

import (
	"context"
	"errors"
	"io"
	"podcast-generator/application/ports/inbound"
	"podcast-generator/domain"
	"podcast-generator/infrastructure/adapters"
	"reflect"
	"testing"
)

func runPipeline(t *testing.T, completer *fakeCompleter, synthesizer *fakeSynthesizer, prompt string) (domain.Generation, []domain.GenerationState, error) {
	t.Helper()
	var states []domain.GenerationState
	pipeline := NewScriptPipeline(adapters.NewZerologWrapper(), completer, synthesizer)
	generation, err := pipeline.Run(context.Background(), inbound.RunPipelineParams{
		Prompt: prompt,
		Config: domain.DefaultModelConfig(),
		OnTransition: func(state domain.GenerationState) {
			states = append(states, state)
		},
	})
	return generation, states, err
}

func TestScriptPipeline_CompletionFailureSkipsSynthesis(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("401 invalid api key")}
	synthesizer := &fakeSynthesizer{audio: "AUDIODATA"}

	generation, states, err := runPipeline(t, completer, synthesizer, "prompt")

	var completionErr *domain.CompletionError
	if !errors.As(err, &completionErr) {
		t.Fatalf("expected CompletionError, got %v", err)
	}
	if synthesizer.calls != 0 {
		t.Errorf("synthesizer called %d times, want 0", synthesizer.calls)
	}
	if generation.Script != nil || generation.Audio != nil {
		t.Errorf("expected no results, got %+v", generation)
	}
	if generation.State != domain.TextFailedState {
		t.Errorf("state = %s, want %s", generation.State, domain.TextFailedState)
	}
	want := []domain.GenerationState{domain.RequestingTextState, domain.TextFailedState}
	if !reflect.DeepEqual(states, want) {
		t.Errorf("transitions = %v, want %v", states, want)
	}
}

func TestScriptPipeline_EmptyCompletionSkipsSynthesis(t *testing.T) {
	completer := &fakeCompleter{text: "  \n\t "}
	synthesizer := &fakeSynthesizer{audio: "AUDIODATA"}

	generation, _, err := runPipeline(t, completer, synthesizer, "prompt")

	if !errors.Is(err, domain.ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
	if synthesizer.calls != 0 {
		t.Errorf("synthesizer called %d times, want 0", synthesizer.calls)
	}
	if generation.HasScript() {
		t.Error("blank completion must not be kept as a script")
	}
}

func TestScriptPipeline_SynthesisFailureKeepsText(t *testing.T) {
	completer := &fakeCompleter{text: "A fine script"}
	synthesizer := &fakeSynthesizer{err: errors.New("tts quota exceeded")}

	generation, states, err := runPipeline(t, completer, synthesizer, "prompt")

	var synthesisErr *domain.SynthesisError
	if !errors.As(err, &synthesisErr) {
		t.Fatalf("expected SynthesisError, got %v", err)
	}
	if synthesisErr.Provider != "fake" {
		t.Errorf("provider = %q", synthesisErr.Provider)
	}
	if !generation.HasScript() || generation.Script.Text != "A fine script" {
		t.Errorf("script should be kept, got %+v", generation.Script)
	}
	if generation.Audio != nil {
		t.Error("audio should be absent")
	}
	want := []domain.GenerationState{
		domain.RequestingTextState, domain.TextReadyState, domain.RequestingAudioState, domain.AudioFailedState,
	}
	if !reflect.DeepEqual(states, want) {
		t.Errorf("transitions = %v, want %v", states, want)
	}
}

func TestScriptPipeline_SynthesizesExactCompletionOnce(t *testing.T) {
	completer := &fakeCompleter{text: "Hello world"}
	synthesizer := &fakeSynthesizer{audio: "AUDIODATA"}

	_, _, err := runPipeline(t, completer, synthesizer, "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if synthesizer.calls != 1 {
		t.Fatalf("synthesizer called %d times, want 1", synthesizer.calls)
	}
	if synthesizer.texts[0] != "Hello world" {
		t.Errorf("synthesized %q, want %q", synthesizer.texts[0], "Hello world")
	}
	if !synthesizer.streams[0].closed {
		t.Error("audio stream was not closed")
	}
}

func TestScriptPipeline_TrimsCompletionAndSendsSystemInstruction(t *testing.T) {
	completer := &fakeCompleter{text: "\n  Welcome to the show.  \n"}
	synthesizer := &fakeSynthesizer{audio: "AUDIODATA"}

	generation, _, err := runPipeline(t, completer, synthesizer, "my prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if generation.Script.Text != "Welcome to the show." {
		t.Errorf("script = %q", generation.Script.Text)
	}
	if synthesizer.texts[0] != "Welcome to the show." {
		t.Errorf("synthesized %q", synthesizer.texts[0])
	}
	req := completer.requests[0]
	if req.SystemInstruction != SystemInstruction || req.Prompt != "my prompt" {
		t.Errorf("unexpected completion request: %+v", req)
	}
	if req.Config.MaxTokens() != domain.MaxTokens {
		t.Errorf("max tokens = %d", req.Config.MaxTokens())
	}
}

func TestScriptPipeline_AudioIsReadableFromStart(t *testing.T) {
	completer := &fakeCompleter{text: "SCRIPT"}
	synthesizer := &fakeSynthesizer{audio: "AUDIODATA"}

	generation, states, err := runPipeline(t, completer, synthesizer, "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reader := generation.Audio.Reader()
	position, err := reader.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatal(err)
	}
	if position != 0 {
		t.Errorf("audio position = %d, want 0", position)
	}
	for i := 0; i < 2; i++ {
		data, err := io.ReadAll(generation.Audio.Reader())
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "AUDIODATA" {
			t.Errorf("read %d = %q", i, data)
		}
	}
	if generation.State != domain.AudioReadyState {
		t.Errorf("state = %s", generation.State)
	}
	want := []domain.GenerationState{
		domain.RequestingTextState, domain.TextReadyState, domain.RequestingAudioState, domain.AudioReadyState,
	}
	if !reflect.DeepEqual(states, want) {
		t.Errorf("transitions = %v, want %v", states, want)
	}
}

func TestScriptPipeline_EmptyAudioIsSynthesisError(t *testing.T) {
	completer := &fakeCompleter{text: "SCRIPT"}
	synthesizer := &fakeSynthesizer{audio: ""}

	generation, _, err := runPipeline(t, completer, synthesizer, "prompt")
	if !errors.Is(err, domain.ErrNoAudio) {
		t.Fatalf("expected ErrNoAudio, got %v", err)
	}
	if !generation.HasScript() {
		t.Error("script should be kept")
	}
}

func TestScriptPipeline_TruncatedScript(t *testing.T) {
	completer := &fakeCompleter{text: "A script that stops mid", truncated: true}
	synthesizer := &fakeSynthesizer{audio: "AUDIODATA"}

	generation, _, err := runPipeline(t, completer, synthesizer, "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !generation.Script.Truncated {
		t.Error("expected the script to be flagged as truncated")
	}
}

func TestScriptPipeline_EndToEnd(t *testing.T) {
	completer := &fakeCompleter{text: "SCRIPT"}
	synthesizer := &fakeSynthesizer{audio: "AUDIODATA"}

	prompt := domain.RenderPrompt("space travel", domain.DefaultPromptStyle)
	generation, _, err := runPipeline(t, completer, synthesizer, prompt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if completer.requests[0].Prompt != prompt {
		t.Errorf("completion prompt = %q", completer.requests[0].Prompt)
	}
	if generation.Script.Text != "SCRIPT" {
		t.Errorf("script = %q", generation.Script.Text)
	}
	if string(generation.Audio.Bytes()) != "AUDIODATA" {
		t.Errorf("audio = %q", generation.Audio.Bytes())
	}
}
