package services

import (
	"context"
	"podcast-generator/application/ports/inbound"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/domain"
	"time"

	"github.com/google/uuid"
)

// ReadinessCheck reports the configuration error that disables generation, or nil.
type ReadinessCheck func() error

type podcastGenerator struct {
	logger   outbound.LoggerPort
	ready    ReadinessCheck
	pipeline inbound.ScriptPipelinePort
	sessions outbound.SessionStorePort
	archiver inbound.PodcastArchiverPort
}

// NewPodcastGenerator wires the session-level flow. archiver may be nil when archiving is disabled.
func NewPodcastGenerator(logger outbound.LoggerPort, ready ReadinessCheck, pipeline inbound.ScriptPipelinePort,
	sessions outbound.SessionStorePort, archiver inbound.PodcastArchiverPort) inbound.PodcastGeneratorPort {
	return &podcastGenerator{
		logger:   logger,
		ready:    ready,
		pipeline: pipeline,
		sessions: sessions,
		archiver: archiver,
	}
}

func (g *podcastGenerator) Ready() error {
	if g.ready == nil {
		return nil
	}
	return g.ready()
}

func (g *podcastGenerator) Session(id string) domain.Session {
	return g.sessions.Get(id)
}

func (g *podcastGenerator) Generate(ctx context.Context, params inbound.GeneratePodcastParams) (domain.Session, error) {
	logger := g.logger.With(map[string]interface{}{
		"session_id": params.SessionID,
	})

	if err := g.Ready(); err != nil {
		logger.Error(err, "Generation requested while the completion client is not configured")
		return g.sessions.Get(params.SessionID), err
	}

	if err := g.sessions.TryBegin(params.SessionID); err != nil {
		logger.Warn("Generation already in progress, request rejected")
		return g.sessions.Get(params.SessionID), err
	}

	session := g.sessions.Get(params.SessionID)
	session.Topic = params.Topic
	session.Style = params.Style
	session.Config = params.Config
	session.PodcastID = ""
	session.LastError = ""
	session.Generation = domain.NewGeneration()

	logger.InfoWithFields("Generating podcast", map[string]interface{}{
		"topic": params.Topic,
		"style": params.Style,
		"model": params.Config.Model(),
	})

	prompt := domain.RenderPrompt(params.Topic, params.Style)
	generation, err := g.pipeline.Run(ctx, inbound.RunPipelineParams{
		Prompt:       prompt,
		Config:       params.Config,
		OnTransition: params.OnTransition,
	})

	session.Generation = generation
	session.UpdatedAt = time.Now()
	if err != nil {
		session.LastError = err.Error()
	}
	if generation.State == domain.AudioReadyState {
		session.PodcastID = uuid.NewString()
		g.archive(ctx, logger, session)
	}

	g.sessions.Complete(session)

	logger.InfoWithFields("Podcast generation finished", map[string]interface{}{
		"state": generation.State,
	})

	return session, err
}

func (g *podcastGenerator) archive(ctx context.Context, logger outbound.LoggerPort, session domain.Session) {
	if g.archiver == nil {
		return
	}
	err := g.archiver.Archive(context.WithoutCancel(ctx), domain.Podcast{
		ID:        session.PodcastID,
		SessionID: session.ID,
		Topic:     session.Topic,
		Style:     session.Style,
		Model:     session.Config.Model(),
		Script:    session.Generation.Script.Text,
		Audio:     session.Generation.Audio,
		CreatedAt: session.UpdatedAt,
	})
	if err != nil {
		logger.ErrorWithFields(err, "Failed to schedule podcast archiving", map[string]interface{}{
			"podcast_id": session.PodcastID,
		})
	}
}
