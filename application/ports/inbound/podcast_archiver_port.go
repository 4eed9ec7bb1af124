package inbound

import (
	"context"
	"podcast-generator/domain"
)

type PodcastArchiverPort interface {
	// Archive schedules the podcast for storage and returns once it has been queued.
	Archive(ctx context.Context, podcast domain.Podcast) error
}
