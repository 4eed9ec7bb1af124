package outbound

import (
	"context"
	"podcast-generator/domain"
)

type StoredAudio struct {
	Key string
	URL string
}

type PodcastAudioStorePort interface {
	Save(ctx context.Context, podcast domain.Podcast) (*StoredAudio, error)
}
