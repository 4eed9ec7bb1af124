package services

import (
	"context"
	"podcast-generator/application/ports/inbound"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/domain"
	"time"
)

const archiveTimeout = 2 * time.Minute

type podcastArchiver struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	audioStore outbound.PodcastAudioStorePort
	index      outbound.PodcastIndexPort
}

func NewPodcastArchiver(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	audioStore outbound.PodcastAudioStorePort, index outbound.PodcastIndexPort) inbound.PodcastArchiverPort {
	return &podcastArchiver{
		logger:     logger,
		workerPool: workerPool,
		audioStore: audioStore,
		index:      index,
	}
}

func (a *podcastArchiver) Archive(ctx context.Context, podcast domain.Podcast) error {
	return a.workerPool.Submit(func() {
		newCtx, cancel := context.WithTimeout(ctx, archiveTimeout)
		defer cancel()

		if err := a.store(newCtx, podcast); err != nil {
			a.logger.ErrorWithFields(err, "Failed to archive podcast", map[string]interface{}{
				"podcast_id": podcast.ID,
				"session_id": podcast.SessionID,
			})
		}
	})
}

func (a *podcastArchiver) store(ctx context.Context, podcast domain.Podcast) error {
	stored, err := a.audioStore.Save(ctx, podcast)
	if err != nil {
		return err
	}

	err = a.index.Save(ctx, domain.ArchivedPodcast{
		Podcast:  podcast,
		AudioKey: stored.Key,
		AudioURL: stored.URL,
	})
	if err != nil {
		return err
	}

	a.logger.InfoWithFields("Podcast archived", map[string]interface{}{
		"podcast_id": podcast.ID,
		"audio_key":  stored.Key,
	})
	return nil
}
