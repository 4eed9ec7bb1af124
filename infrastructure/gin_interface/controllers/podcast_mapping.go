package controllers

import (
	"errors"
	"net/http"
	"podcast-generator/domain"
	"podcast-generator/infrastructure/gin_interface/dto"
)

const (
	audioPath         = "/audio"
	audioDownloadPath = "/audio/download"
)

type generateInput struct {
	topic  string
	style  domain.PromptStyle
	config domain.ModelConfig
}

func parseGenerateRequest(req dto.GeneratePodcastRequest) (*generateInput, error) {
	model := domain.DefaultModel()
	if req.Model != "" {
		parsed, err := domain.ParseModel(req.Model)
		if err != nil {
			return nil, err
		}
		model = parsed
	}

	temperature := domain.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	modelConfig, err := domain.NewModelConfig(model, temperature)
	if err != nil {
		return nil, err
	}

	style, err := domain.ParsePromptStyle(req.Style)
	if err != nil {
		return nil, err
	}

	return &generateInput{
		topic:  req.Topic,
		style:  style,
		config: modelConfig,
	}, nil
}

func toResponse(session domain.Session, err error) dto.GeneratePodcastResponse {
	res := dto.GeneratePodcastResponse{
		SessionID: session.ID,
		PodcastID: session.PodcastID,
		State:     string(session.Generation.State),
		Topic:     session.Topic,
		Model:     session.Config.Model().ID(),
		Style:     string(session.Style),
		Error:     session.LastError,
	}
	if err != nil {
		res.Error = err.Error()
	}
	if session.Generation.HasScript() {
		res.Script = session.Generation.Script.Text
		res.Truncated = session.Generation.Script.Truncated
	}
	if session.Generation.HasAudio() {
		res.AudioURL = audioPath
		res.DownloadURL = audioDownloadPath
	}
	return res
}

func options() dto.OptionsResponse {
	models := make([]dto.ModelOption, 0, len(domain.SupportedModels))
	for _, m := range domain.SupportedModels {
		models = append(models, dto.ModelOption{ID: m.ID(), Name: m.DisplayName()})
	}
	styles := make([]string, 0, len(domain.PromptStyles))
	for _, s := range domain.PromptStyles {
		styles = append(styles, string(s))
	}
	return dto.OptionsResponse{
		Models:             models,
		Styles:             styles,
		DefaultTemperature: domain.DefaultTemperature,
		MaxTokens:          domain.MaxTokens,
	}
}

// statusFor maps a generation error to the HTTP status returned to API clients.
func statusFor(err error) int {
	var configErr *domain.ConfigurationError
	var completionErr *domain.CompletionError
	var synthesisErr *domain.SynthesisError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &configErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrGenerationInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownModel),
		errors.Is(err, domain.ErrUnknownPromptStyle),
		errors.Is(err, domain.ErrTemperatureOutOfRange):
		return http.StatusBadRequest
	case errors.As(err, &completionErr):
		return http.StatusBadGateway
	case errors.As(err, &synthesisErr):
		// the script is still returned
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
