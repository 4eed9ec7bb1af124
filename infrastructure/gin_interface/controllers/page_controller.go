package controllers

import (
	"errors"
	"mime"
	"net/http"
	"podcast-generator/application/ports/inbound"
	"podcast-generator/application/ports/outbound"
	"podcast-generator/domain"
	"podcast-generator/infrastructure/gin_interface/dto"
	"podcast-generator/middleware"
	"strconv"

	"github.com/gin-gonic/gin"
)

const indexTemplate = "index.html"

type PageController interface {
	Index(c *gin.Context)
	Generate(c *gin.Context)
	Audio(c *gin.Context)
	DownloadAudio(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type pageController struct {
	logger    outbound.LoggerPort
	generator inbound.PodcastGeneratorPort
}

type pageData struct {
	Models        []dto.ModelOption
	Styles        []string
	SelectedModel string
	SelectedStyle string
	Temperature   string
	Topic         string
	State         string
	Script        string
	Truncated     bool
	HasAudio      bool
	AudioURL      string
	DownloadURL   string
	DownloadName  string
	MaxTokens     int
	Notice        string
	ConfigError   string
}

func NewPageController(logger outbound.LoggerPort, generator inbound.PodcastGeneratorPort) PageController {
	return &pageController{
		logger:    logger,
		generator: generator,
	}
}

func (p *pageController) Index(c *gin.Context) {
	session := p.generator.Session(middleware.SessionID(c))
	c.HTML(http.StatusOK, indexTemplate, p.buildPage(session, session.LastError))
}

func (p *pageController) Generate(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req dto.GeneratePodcastRequest
	if err := c.ShouldBind(&req); err != nil {
		p.renderError(c, http.StatusBadRequest, sessionID, err)
		return
	}
	input, err := parseGenerateRequest(req)
	if err != nil {
		p.renderError(c, statusFor(err), sessionID, err)
		return
	}

	_, err = p.generator.Generate(c.Request.Context(), inbound.GeneratePodcastParams{
		SessionID: sessionID,
		Topic:     input.topic,
		Style:     input.style,
		Config:    input.config,
	})
	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) || errors.Is(err, domain.ErrGenerationInProgress) {
		p.renderError(c, statusFor(err), sessionID, err)
		return
	}

	// pipeline failures are kept on the session and shown by Index
	c.Redirect(http.StatusSeeOther, "/")
}

func (p *pageController) Audio(c *gin.Context) {
	p.serveAudio(c, false)
}

func (p *pageController) DownloadAudio(c *gin.Context) {
	p.serveAudio(c, true)
}

func (p *pageController) serveAudio(c *gin.Context, attachment bool) {
	session := p.generator.Session(middleware.SessionID(c))
	if !session.Generation.HasAudio() {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrNoAudio.Error()})
		return
	}

	audio := session.Generation.Audio
	headers := map[string]string{}
	if attachment {
		headers["Content-Disposition"] = mime.FormatMediaType("attachment", map[string]string{
			"filename": session.DownloadFileName(),
		})
	}

	c.DataFromReader(http.StatusOK, int64(audio.Len()), domain.AudioMimeType, audio.Reader(), headers)
}

// Health stays 200 while generation is disabled so the page remains reachable.
func (p *pageController) Health(c *gin.Context) {
	res := dto.HealthResponse{Status: "ok", Ready: true}
	if err := p.generator.Ready(); err != nil {
		res.Ready = false
		res.Reason = err.Error()
	}
	c.JSON(http.StatusOK, res)
}

func (p *pageController) renderError(c *gin.Context, status int, sessionID string, err error) {
	p.logger.WarnWithFields("Podcast generation request rejected", map[string]interface{}{
		"session_id": sessionID,
		"reason":     err.Error(),
	})
	session := p.generator.Session(sessionID)
	c.HTML(status, indexTemplate, p.buildPage(session, err.Error()))
}

func (p *pageController) buildPage(session domain.Session, notice string) pageData {
	opts := options()
	data := pageData{
		Models:        opts.Models,
		Styles:        opts.Styles,
		SelectedModel: session.Config.Model().ID(),
		SelectedStyle: string(session.Style),
		Temperature:   strconv.FormatFloat(session.Config.Temperature(), 'f', 2, 64),
		Topic:         session.Topic,
		State:         string(session.Generation.State),
		MaxTokens:     opts.MaxTokens,
		Notice:        notice,
	}
	if err := p.generator.Ready(); err != nil {
		data.ConfigError = err.Error()
	}
	if session.Generation.HasScript() {
		data.Script = session.Generation.Script.Text
		data.Truncated = session.Generation.Script.Truncated
	}
	if session.Generation.HasAudio() {
		data.HasAudio = true
		data.AudioURL = audioPath
		data.DownloadURL = audioDownloadPath
		data.DownloadName = session.DownloadFileName()
	}
	return data
}

func (p *pageController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", p.Index)
	g.POST("/generate", p.Generate)
	g.GET(audioPath, p.Audio)
	g.GET(audioDownloadPath, p.DownloadAudio)
	g.GET("/health", p.Health)
}
