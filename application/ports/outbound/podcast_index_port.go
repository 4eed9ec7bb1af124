package outbound

import (
	"context"
	"podcast-generator/domain"
)

type PodcastIndexPort interface {
	Save(ctx context.Context, podcast domain.ArchivedPodcast) error
}
