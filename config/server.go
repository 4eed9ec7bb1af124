package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port           string
	LogLevel       string
	LogFormat      string
	WorkerPoolSize int
	SessionIdle    time.Duration
}

func GetServerConfig() (*ServerConfig, error) {
	poolSize, err := strconv.Atoi(getEnv("WORKER_POOL_SIZE", "16"))
	if err != nil || poolSize <= 0 {
		return nil, fmt.Errorf("WORKER_POOL_SIZE must be a positive integer")
	}
	idleMinutes, err := strconv.Atoi(getEnv("SESSION_IDLE_MINUTES", "60"))
	if err != nil || idleMinutes <= 0 {
		return nil, fmt.Errorf("SESSION_IDLE_MINUTES must be a positive integer")
	}
	return &ServerConfig{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		WorkerPoolSize: poolSize,
		SessionIdle:    time.Duration(idleMinutes) * time.Minute,
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
