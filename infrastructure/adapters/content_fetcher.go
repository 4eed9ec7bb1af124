package adapters

import (
	"fmt"
	"io"
	"net/http"
	"podcast-generator/application/ports/outbound"
	"strings"
)

const maxErrorBodyLength = 512

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

// HTTPStatusError is returned for upstream responses other than 200 OK.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP request returned non-OK status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP request returned non-OK status code: %d: %s", e.StatusCode, e.Body)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort, client *http.Client) ContentFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &contentFetcher{
		logger: logger,
		client: client,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.Redacted(),
		})
		return nil, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.Redacted(),
			})
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		bodyPayload, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyLength))
		statusErr := &HTTPStatusError{
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(bodyPayload)),
		}
		c.logger.ErrorWithFields(statusErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.Redacted(),
			"status": res.StatusCode,
		})
		return nil, statusErr
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.Redacted(),
		})
		return nil, err
	}

	return payload, nil
}
