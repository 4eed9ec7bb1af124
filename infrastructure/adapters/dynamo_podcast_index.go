package adapters

import (
	"context"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/config"
	"podcast-generator/domain"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

type dynamoPodcastItem struct {
	PodcastId string `dynamodbav:"podcast_id"`
	SessionId string `dynamodbav:"session_id"`
	Topic     string `dynamodbav:"topic"`
	Model     string `dynamodbav:"model"`
	Style     string `dynamodbav:"style"`
	Script    string `dynamodbav:"script"`
	AudioKey  string `dynamodbav:"audio_key"`
	AudioUrl  string `dynamodbav:"audio_url"`
	CreatedAt string `dynamodbav:"created_at"`
	TTL       int64  `dynamodbav:"ttl"`
}

type dynamoPodcastIndex struct {
	logger        outbound.LoggerPort
	dynamoSvc     dynamodbiface.DynamoDBAPI
	archiveConfig *config.ArchiveConfig
}

func NewDynamoPodcastIndex(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI, archiveConfig *config.ArchiveConfig) outbound.PodcastIndexPort {
	return &dynamoPodcastIndex{
		logger:        logger,
		dynamoSvc:     dynamoSvc,
		archiveConfig: archiveConfig,
	}
}

func (d *dynamoPodcastIndex) Save(ctx context.Context, podcast domain.ArchivedPodcast) error {
	item := dynamoPodcastItem{
		PodcastId: podcast.ID,
		SessionId: podcast.SessionID,
		Topic:     podcast.Topic,
		Model:     podcast.Model.ID(),
		Style:     string(podcast.Style),
		Script:    podcast.Script,
		AudioKey:  podcast.AudioKey,
		AudioUrl:  podcast.AudioURL,
		CreatedAt: podcast.CreatedAt.UTC().Format(time.RFC3339),
		TTL:       podcast.CreatedAt.Add(time.Duration(d.archiveConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		d.logger.ErrorWithFields(err, "Failed to marshal podcast item", map[string]interface{}{
			"podcast_id": podcast.ID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(d.archiveConfig.TableName),
	}

	_, err = d.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		d.logger.ErrorWithFields(err, "Failed to save podcast item", map[string]interface{}{
			"podcast_id": podcast.ID,
			"table":      d.archiveConfig.TableName,
		})
		return err
	}

	return nil
}
