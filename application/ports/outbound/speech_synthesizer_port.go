package outbound

import (
	"context"
	"io"
)

type SpeechSynthesizerPort interface {
	// Synthesize returns an encoded audio stream the caller must close.
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
	Provider() string
}
