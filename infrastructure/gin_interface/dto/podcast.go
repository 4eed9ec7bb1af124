package dto

type GeneratePodcastRequest struct {
	Topic       string   `json:"topic" form:"topic"`
	Model       string   `json:"model" form:"model"`
	Temperature *float64 `json:"temperature" form:"temperature"`
	Style       string   `json:"style" form:"style"`
}

type GeneratePodcastResponse struct {
	SessionID   string `json:"session_id"`
	PodcastID   string `json:"podcast_id,omitempty"`
	State       string `json:"state"`
	Topic       string `json:"topic"`
	Model       string `json:"model"`
	Style       string `json:"style"`
	Script      string `json:"script,omitempty"`
	Truncated   bool   `json:"truncated"`
	AudioURL    string `json:"audio_url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

type ModelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OptionsResponse struct {
	Models             []ModelOption `json:"models"`
	Styles             []string      `json:"styles"`
	DefaultTemperature float64       `json:"default_temperature"`
	MaxTokens          int           `json:"max_tokens"`
}

type StateEvent struct {
	State string `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}
