package domain

import (
	"bytes"
	"time"
)

type GenerationState string

const (
	IdleState            GenerationState = "idle"
	RequestingTextState  GenerationState = "requesting_text"
	TextReadyState       GenerationState = "text_ready"
	TextFailedState      GenerationState = "text_failed"
	RequestingAudioState GenerationState = "requesting_audio"
	AudioReadyState      GenerationState = "audio_ready"
	AudioFailedState     GenerationState = "audio_failed"
)

func (s GenerationState) Terminal() bool {
	return s == TextFailedState || s == AudioReadyState || s == AudioFailedState
}

const AudioFormatMP3 = "mp3"

const AudioMimeType = "audio/mpeg"

type ScriptResult struct {
	Text string
	// Truncated is set when the completion stopped at the token limit.
	Truncated bool
}

// AudioResult holds a fully buffered audio payload. Every reader it hands out starts at offset zero.
type AudioResult struct {
	Format string
	data   []byte
}

func NewAudioResult(data []byte, format string) *AudioResult {
	return &AudioResult{
		Format: format,
		data:   data,
	}
}

func (a *AudioResult) Reader() *bytes.Reader {
	return bytes.NewReader(a.data)
}

func (a *AudioResult) Bytes() []byte {
	out := make([]byte, len(a.data))
	copy(out, a.data)
	return out
}

func (a *AudioResult) Len() int {
	return len(a.data)
}

// Generation is the outcome of one pipeline run. Script and Audio are nil until the matching step succeeds.
type Generation struct {
	State  GenerationState
	Script *ScriptResult
	Audio  *AudioResult
}

func NewGeneration() Generation {
	return Generation{State: IdleState}
}

func (g Generation) HasScript() bool {
	return g.Script != nil && g.Script.Text != ""
}

func (g Generation) HasAudio() bool {
	return g.Audio != nil && g.Audio.Len() > 0
}

type Session struct {
	ID         string
	Topic      string
	Style      PromptStyle
	Config     ModelConfig
	Generation Generation
	// LastError is the user-facing notice of the most recent run, empty on success.
	LastError string
	PodcastID string
	Busy      bool
	UpdatedAt time.Time
}

func NewSession(id string) *Session {
	return &Session{
		ID:         id,
		Style:      DefaultPromptStyle,
		Config:     DefaultModelConfig(),
		Generation: NewGeneration(),
		UpdatedAt:  time.Now(),
	}
}

// DownloadFileName is the attachment name offered for the session audio.
func (s *Session) DownloadFileName() string {
	return s.Topic + "_podcast." + AudioFormatMP3
}
