package config

import (
	"fmt"
	"os"
	"strconv"
)

type ArchiveConfig struct {
	BucketName string
	TableName  string
	Region     string
	// Endpoint overrides the AWS endpoint, e.g. for localstack.
	Endpoint   string
	TtlMinutes int
}

// GetArchiveConfig returns nil without error when archiving is not enabled.
func GetArchiveConfig() (*ArchiveConfig, error) {
	bucketName := os.Getenv("ARCHIVE_BUCKET_NAME")
	if bucketName == "" {
		return nil, nil
	}
	tableName := os.Getenv("ARCHIVE_TABLE_NAME")
	if tableName == "" {
		return nil, fmt.Errorf("ARCHIVE_TABLE_NAME must be set when ARCHIVE_BUCKET_NAME is set")
	}
	region := os.Getenv("REGION")
	if region == "" {
		return nil, fmt.Errorf("REGION must be set")
	}
	ttlMinutes, err := strconv.Atoi(getEnv("ARCHIVE_TTL_MINUTES", "10080"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ARCHIVE_TTL_MINUTES: %w", err)
	}

	return &ArchiveConfig{
		BucketName: bucketName,
		TableName:  tableName,
		Region:     region,
		Endpoint:   os.Getenv("AWS_ENDPOINT"),
		TtlMinutes: ttlMinutes,
	}, nil
}
