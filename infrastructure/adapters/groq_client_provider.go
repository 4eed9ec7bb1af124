package adapters

import (
	"podcast-generator/config"
	"podcast-generator/domain"
	"sync"

	"github.com/sashabaranov/go-openai"
)

// GroqClientProvider builds the completion client once per process. A failed build is remembered
// and reported on every later call instead of being retried.
type GroqClientProvider struct {
	once   sync.Once
	load   func() (*config.GroqConfig, error)
	client *openai.Client
	err    error
}

func NewGroqClientProvider(load func() (*config.GroqConfig, error)) *GroqClientProvider {
	return &GroqClientProvider{load: load}
}

func (p *GroqClientProvider) Client() (*openai.Client, error) {
	p.once.Do(func() {
		groqConfig, err := p.load()
		if err != nil {
			p.err = &domain.ConfigurationError{Setting: "GROQ_API_KEY", Err: err}
			return
		}
		clientConfig := openai.DefaultConfig(groqConfig.ApiKey)
		clientConfig.BaseURL = groqConfig.ApiUrl
		p.client = openai.NewClientWithConfig(clientConfig)
	})
	return p.client, p.err
}

// Ready forces construction and returns the sticky configuration error, if any.
func (p *GroqClientProvider) Ready() error {
	_, err := p.Client()
	return err
}
