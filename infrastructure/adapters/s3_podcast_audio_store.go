package adapters

import (
	"context"
	"fmt"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/config"
	"podcast-generator/domain"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type s3PodcastAudioStore struct {
	logger        outbound.LoggerPort
	s3Svc         s3iface.S3API
	archiveConfig *config.ArchiveConfig
}

func NewS3PodcastAudioStore(s3Svc s3iface.S3API, archiveConfig *config.ArchiveConfig, logger outbound.LoggerPort) outbound.PodcastAudioStorePort {
	return &s3PodcastAudioStore{
		logger:        logger,
		s3Svc:         s3Svc,
		archiveConfig: archiveConfig,
	}
}

func (s *s3PodcastAudioStore) Save(ctx context.Context, podcast domain.Podcast) (*outbound.StoredAudio, error) {
	if podcast.Audio == nil {
		return nil, domain.ErrNoAudio
	}
	itemPath := s.getS3ItemPath(podcast)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.archiveConfig.BucketName),
		Key:           aws.String(itemPath),
		Body:          podcast.Audio.Reader(),
		ContentLength: aws.Int64(int64(podcast.Audio.Len())),
		ContentType:   aws.String(domain.AudioMimeType),
		// free text such as the topic stays in the index item, metadata headers must be ASCII
		Metadata: map[string]*string{
			"model": aws.String(podcast.Model.ID()),
		},
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload podcast audio to S3", map[string]interface{}{
			"bucket": s.archiveConfig.BucketName,
			"key":    itemPath,
		})
		return nil, err
	}

	s3Url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.archiveConfig.BucketName, itemPath)
	s.logger.DebugWithFields("Successfully uploaded podcast audio to S3", map[string]interface{}{
		"s3Url": s3Url,
	})

	return &outbound.StoredAudio{
		Key: itemPath,
		URL: s3Url,
	}, nil
}

func (s *s3PodcastAudioStore) getS3ItemPath(podcast domain.Podcast) string {
	return fmt.Sprintf("podcasts/%s/%s.%s", podcast.SessionID, podcast.ID, podcast.Audio.Format)
}
