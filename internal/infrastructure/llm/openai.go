package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUpstream wraps every failure of the external completion service:
// network error, non-200 status, or malformed response body.
var ErrUpstream = errors.New("llm upstream failure")

const defaultTemperature = 0.7

type Client struct {
	http        *resty.Client
	model       string
	temperature float64
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(timeout)
	return &Client{http: c, model: model, temperature: defaultTemperature}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete performs a single chat completion. No retries, no fallback.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: system},
				{Role: "user", Content: user},
			},
			Temperature: c.temperature,
		}).
		SetResult(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", ErrUpstream)
	}
	return out.Choices[0].Message.Content, nil
}
