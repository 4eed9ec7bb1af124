package services

import (
	"context"
	"io"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/domain"
	"strings"
	"sync"
)

type fakeCompleter struct {
	text      string
	truncated bool
	err       error
	calls     int
	requests  []outbound.CompleteScriptRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req outbound.CompleteScriptRequest) (*outbound.CompleteScriptResponse, error) {
	f.calls++
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &outbound.CompleteScriptResponse{Text: f.text, Truncated: f.truncated}, nil
}

type trackingReadCloser struct {
	io.Reader
	closed bool
}

func (t *trackingReadCloser) Close() error {
	t.closed = true
	return nil
}

type fakeSynthesizer struct {
	audio   string
	err     error
	calls   int
	texts   []string
	streams []*trackingReadCloser
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, text string) (io.ReadCloser, error) {
	f.calls++
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	stream := &trackingReadCloser{Reader: strings.NewReader(f.audio)}
	f.streams = append(f.streams, stream)
	return stream, nil
}

func (f *fakeSynthesizer) Provider() string {
	return "fake"
}

type syncDispatcher struct {
	submitted int
	err       error
}

func (d *syncDispatcher) Submit(task func()) error {
	if d.err != nil {
		return d.err
	}
	d.submitted++
	task()
	return nil
}

type fakeArchiver struct {
	mu       sync.Mutex
	podcasts []domain.Podcast
}

func (f *fakeArchiver) Archive(_ context.Context, podcast domain.Podcast) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.podcasts = append(f.podcasts, podcast)
	return nil
}

type fakeAudioStore struct {
	err   error
	saved []domain.Podcast
}

func (f *fakeAudioStore) Save(_ context.Context, podcast domain.Podcast) (*outbound.StoredAudio, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, podcast)
	return &outbound.StoredAudio{
		Key: "podcasts/" + podcast.SessionID + "/" + podcast.ID + ".mp3",
		URL: "https://bucket.s3.amazonaws.com/podcasts/" + podcast.SessionID + "/" + podcast.ID + ".mp3",
	}, nil
}

type fakeIndex struct {
	err   error
	saved []domain.ArchivedPodcast
}

func (f *fakeIndex) Save(_ context.Context, podcast domain.ArchivedPodcast) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, podcast)
	return nil
}
