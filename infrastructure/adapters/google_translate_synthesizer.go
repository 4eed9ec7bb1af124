package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/config"
	"strconv"
	"strings"
	"unicode/utf8"
)

// The translate endpoint rejects longer inputs.
const googleTranslateMaxChunk = 100

const googleTranslateUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

type googleTranslateSynthesizer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	ttsConfig *config.GoogleTranslateTtsConfig
}

func NewGoogleTranslateSynthesizer(contentFetcher ContentFetcher, ttsConfig *config.GoogleTranslateTtsConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &googleTranslateSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ttsConfig:      ttsConfig,
	}
}

func (g *googleTranslateSynthesizer) Provider() string {
	return string(config.GoogleTranslateSpeechProvider)
}

// Synthesize fetches one MP3 per chunk and concatenates them; MP3 frames play back-to-back.
func (g *googleTranslateSynthesizer) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	chunks := splitSpeechText(text, googleTranslateMaxChunk)
	g.logger.DebugWithFields("Synthesizing speech", map[string]interface{}{
		"provider": g.Provider(),
		"chunks":   len(chunks),
		"length":   utf8.RuneCountInString(text),
	})

	var audio bytes.Buffer
	for i, chunk := range chunks {
		req, err := g.getRequest(ctx, chunk, i, len(chunks))
		if err != nil {
			g.logger.Error(err, "Failed to construct the HTTP request for speech synthesis")
			return nil, err
		}
		payload, err := g.FetchContent(req)
		if err != nil {
			return nil, err
		}
		audio.Write(payload)
	}

	return io.NopCloser(&audio), nil
}

func (g *googleTranslateSynthesizer) getRequest(ctx context.Context, chunk string, index int, total int) (*http.Request, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", g.ttsConfig.Language)
	query.Set("q", chunk)
	query.Set("total", strconv.Itoa(total))
	query.Set("idx", strconv.Itoa(index))
	query.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.ttsConfig.ApiUrl+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", googleTranslateUserAgent)
	req.Header.Set("Referer", "https://translate.google.com/")
	return req, nil
}

// splitSpeechText packs words into chunks of at most limit runes. Words longer than limit are cut.
func splitSpeechText(text string, limit int) []string {
	chunks := make([]string, 0)
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > limit {
			flush()
			runes := []rune(word)
			chunks = append(chunks, string(runes[:limit]))
			word = string(runes[limit:])
		}
		wordLen := utf8.RuneCountInString(word)
		if wordLen == 0 {
			continue
		}
		if currentLen > 0 && currentLen+1+wordLen > limit {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}
	flush()

	return chunks
}
