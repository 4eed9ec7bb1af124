package controllers

import (
	"net/http"
	"podcast-generator/application/ports/inbound"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/domain"
	"podcast-generator/infrastructure/gin_interface/dto"
	"podcast-generator/middleware"

	"github.com/gin-gonic/gin"
)

type PodcastController interface {
	Options(c *gin.Context)
	CurrentPodcast(c *gin.Context)
	CreatePodcast(c *gin.Context)
	StreamPodcast(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup)
}

type podcastController struct {
	logger    outbound.LoggerPort
	generator inbound.PodcastGeneratorPort
}

func NewPodcastController(logger outbound.LoggerPort, generator inbound.PodcastGeneratorPort) PodcastController {
	return &podcastController{
		logger:    logger,
		generator: generator,
	}
}

func (p *podcastController) Options(c *gin.Context) {
	c.JSON(http.StatusOK, options())
}

func (p *podcastController) CurrentPodcast(c *gin.Context) {
	session := p.generator.Session(middleware.SessionID(c))
	c.JSON(http.StatusOK, toResponse(session, nil))
}

func (p *podcastController) CreatePodcast(c *gin.Context) {
	input, ok := p.bindRequest(c)
	if !ok {
		return
	}

	session, err := p.generator.Generate(c.Request.Context(), inbound.GeneratePodcastParams{
		SessionID: middleware.SessionID(c),
		Topic:     input.topic,
		Style:     input.style,
		Config:    input.config,
	})

	c.JSON(statusFor(err), toResponse(session, err))
}

// StreamPodcast reports every pipeline state as a server-sent event, then the result.
func (p *podcastController) StreamPodcast(c *gin.Context) {
	input, ok := p.bindRequest(c)
	if !ok {
		return
	}

	if err := p.generator.Ready(); err != nil {
		abortJSON(c, statusFor(err), err)
		return
	}

	c.Status(http.StatusOK)
	session, err := p.generator.Generate(c.Request.Context(), inbound.GeneratePodcastParams{
		SessionID: middleware.SessionID(c),
		Topic:     input.topic,
		Style:     input.style,
		Config:    input.config,
		OnTransition: func(state domain.GenerationState) {
			c.SSEvent("state", dto.StateEvent{State: string(state)})
			c.Writer.Flush()
		},
	})
	if err != nil {
		c.SSEvent("error", dto.ErrorResponse{Error: err.Error()})
	}
	c.SSEvent("result", toResponse(session, err))
	c.Writer.Flush()
}

func (p *podcastController) bindRequest(c *gin.Context) (*generateInput, bool) {
	var req dto.GeneratePodcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortJSON(c, http.StatusBadRequest, err)
		return nil, false
	}

	input, err := parseGenerateRequest(req)
	if err != nil {
		p.logger.WarnWithFields("Rejected podcast request", map[string]interface{}{
			"reason": err.Error(),
		})
		abortJSON(c, statusFor(err), err)
		return nil, false
	}

	return input, true
}

// abortJSON drops a content type set by SSEMiddleware so errors go out as JSON.
func abortJSON(c *gin.Context, status int, err error) {
	c.Writer.Header().Del("Content-Type")
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}

func (p *podcastController) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/models", p.Options)
	g.GET("/podcasts/current", p.CurrentPodcast)
	g.POST("/podcasts", p.CreatePodcast)
	g.POST("/podcasts/stream", middleware.SSEMiddleware(), p.StreamPodcast)
}
