package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultOpenRouterURL = "https://openrouter.ai/api/v1"
	temperature          = 0.7
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    any    `json:"code,omitempty"`
	} `json:"error,omitempty"`
}

// OpenRouterConfig configures OpenRouterProvider. APIKey is sent as a bearer token and never logged.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Referer string
	Title   string
	Timeout time.Duration
}

// OpenRouterProvider implements ItineraryProvider using the OpenRouter chat completions API.
type OpenRouterProvider struct {
	http     *resty.Client
	endpoint string
	cfg      OpenRouterConfig
}

func NewOpenRouterProvider(cfg OpenRouterConfig) *OpenRouterProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenRouterURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &OpenRouterProvider{
		http:     resty.New().SetTimeout(cfg.Timeout),
		endpoint: cfg.BaseURL + "/chat/completions",
		cfg:      cfg,
	}
}

func (p *OpenRouterProvider) Name() string { return "openrouter" }

// GenerateItinerary posts prompt to OpenRouter and returns the first choice, sanitized.
func (p *OpenRouterProvider) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model:       p.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}

	resp, err := p.http.R().
		SetContext(ctx).
		SetAuthToken(p.cfg.APIKey).
		SetHeader("HTTP-Referer", p.cfg.Referer).
		SetHeader("X-Title", p.cfg.Title).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(p.endpoint)
	if err != nil {
		return "", fmt.Errorf("openrouter: do request: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(resp.Body(), &cr); err != nil {
		if resp.IsError() {
			return "", fmt.Errorf("openrouter: api error (%d): %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
		}
		return "", fmt.Errorf("openrouter: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("openrouter: api error (%d): %s", resp.StatusCode(), cr.Error.Message)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter: api error (%d): %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
	if len(cr.Choices) == 0 {
		return NoItineraryFound, nil
	}
	return cleanItinerary(cr.Choices[0].Message.Content), nil
}
