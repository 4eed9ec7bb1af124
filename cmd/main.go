package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"podcast-generator/application/ports/inbound"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/application/services"
	"podcast-generator/config"
	"podcast-generator/domain"
	"podcast-generator/infrastructure/adapters"
	"podcast-generator/infrastructure/gin_interface/controllers"
	"podcast-generator/infrastructure/gin_interface/views"
	"podcast-generator/middleware"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// a missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	zeroLogger := adapters.NewConfiguredZerologWrapper(serverConfig.LogLevel, serverConfig.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	groqProvider := adapters.NewGroqClientProvider(config.GetGroqConfig)
	if err := groqProvider.Ready(); err != nil {
		zeroLogger.Error(err, "Groq client is not configured, generation is disabled")
	}

	contentFetcher := adapters.NewContentFetcher(zeroLogger, nil)

	synthesizer, speechErr := newSpeechSynthesizer(contentFetcher, zeroLogger)
	if speechErr != nil {
		zeroLogger.Error(speechErr, "Speech synthesizer is not configured, generation is disabled")
	}

	ready := func() error {
		if speechErr != nil {
			return speechErr
		}
		return groqProvider.Ready()
	}

	sessionStore := adapters.NewMemorySessionStore()
	go func() {
		removed := sessionStore.RunEviction(ctx, serverConfig.SessionIdle, serverConfig.SessionIdle/4)
		zeroLogger.DebugWithFields("Session eviction stopped", map[string]interface{}{
			"removed": removed,
		})
	}()

	archiver := newPodcastArchiver(workerPool, zeroLogger)

	scriptCompleter := adapters.NewGroqScriptCompleter(groqProvider, zeroLogger)

	scriptPipeline := services.NewScriptPipeline(zeroLogger, scriptCompleter, synthesizer)

	podcastGenerator := services.NewPodcastGenerator(zeroLogger, ready, scriptPipeline, sessionStore, archiver)

	pageController := controllers.NewPageController(zeroLogger, podcastGenerator)
	podcastController := controllers.NewPodcastController(zeroLogger, podcastGenerator)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.SessionMiddleware())
	router.SetHTMLTemplate(views.Templates())

	pageController.RegisterRoutes(router)

	api := router.Group("/api")
	if authConfig := config.GetAuthConfig(); authConfig != nil {
		authHandler, err := middleware.NewJWKSAuthHandler(authConfig.JwksUrl, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		api.Use(authHandler.AuthMiddleware())
	}
	podcastController.RegisterRoutes(api)

	server := &http.Server{
		Addr:    ":" + serverConfig.Port,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zeroLogger.Error(err, "Failed to shut down the server gracefully")
		}
	}()

	zeroLogger.InfoWithFields("Starting server", map[string]interface{}{
		"port": serverConfig.Port,
	})
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
	zeroLogger.Info("Server stopped")
}

func newSpeechSynthesizer(contentFetcher adapters.ContentFetcher, logger outbound.LoggerPort) (outbound.SpeechSynthesizerPort, error) {
	speechConfig, err := config.GetSpeechConfig()
	if err != nil {
		return nil, &domain.ConfigurationError{Setting: "SPEECH_PROVIDER", Err: err}
	}

	switch speechConfig.Provider {
	case config.ElevenLabsSpeechProvider:
		elevenLabsConfig, err := config.GetElevenLabsConfig()
		if err != nil {
			return nil, &domain.ConfigurationError{Setting: "ELEVEN_LABS", Err: err}
		}
		return adapters.NewElevenLabsSynthesizer(contentFetcher, elevenLabsConfig), nil
	case config.OpenAISpeechProvider:
		openAIConfig, err := config.GetOpenAITtsConfig()
		if err != nil {
			return nil, &domain.ConfigurationError{Setting: "OPENAI_API_KEY", Err: err}
		}
		return adapters.NewOpenAISpeechSynthesizer(openAIConfig, logger), nil
	default:
		return adapters.NewGoogleTranslateSynthesizer(contentFetcher, config.GetGoogleTranslateTtsConfig(), logger), nil
	}
}

// newPodcastArchiver returns nil when no archive bucket is configured.
func newPodcastArchiver(workerPool *ants.Pool, logger outbound.LoggerPort) inbound.PodcastArchiverPort {
	archiveConfig, err := config.GetArchiveConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get archive config")
	}
	if archiveConfig == nil {
		logger.Info("Podcast archiving is disabled")
		return nil
	}

	awsConfig := aws.NewConfig().WithRegion(archiveConfig.Region)
	if archiveConfig.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(archiveConfig.Endpoint).WithS3ForcePathStyle(true)
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            *awsConfig,
		SharedConfigState: session.SharedConfigEnable,
	}))

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	audioStore := adapters.NewS3PodcastAudioStore(s3Client, archiveConfig, logger)
	podcastIndex := adapters.NewDynamoPodcastIndex(logger, dynamoClient, archiveConfig)

	return services.NewPodcastArchiver(logger, workerPool, audioStore, podcastIndex)
}
