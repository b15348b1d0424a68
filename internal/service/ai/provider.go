package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
)

var (
	ErrMissingAPIKey   = errors.New("api key is required")
	ErrMissingModel    = errors.New("at least one model is required")
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingBaseURL  = errors.New("base url is required")
	ErrAllModelsFailed = errors.New("all models failed")
)

// Message is a plain-text chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one completion request, independent of the model that serves it.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int64
	// Title is sent as the X-Title attribution header on OpenRouter.
	Title string
}

// Completion is a provider answer. Raw holds an OpenAI-shaped chat completion
// payload, Content the first choice's text.
type Completion struct {
	Model   string
	Content string
	Raw     json.RawMessage
}

// Provider performs a single completion attempt against one model.
type Provider interface {
	Name() string
	Complete(ctx context.Context, model string, req Request) (*Completion, error)
}

// Config describes the provider connection.
type Config struct {
	Provider   string
	APIKey     string
	BaseURL    string
	SiteURL    string
	HTTPClient *http.Client
}

// NewProvider builds a provider from cfg. An empty provider name means OpenRouter.
func NewProvider(cfg Config) (Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	switch strings.ToLower(cfg.Provider) {
	case "", ProviderOpenRouter:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOpenRouterBaseURL
		}
		return NewOpenAIProvider(ProviderOpenRouter, cfg.APIKey, baseURL, cfg.SiteURL, cfg.HTTPClient)
	case ProviderOpenAI:
		return NewOpenAIProvider(ProviderOpenAI, cfg.APIKey, cfg.BaseURL, "", cfg.HTTPClient)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.HTTPClient)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidProvider, cfg.Provider)
	}
}

// StatusError is a non-2xx answer from the provider API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the status is worth another attempt (429 or 5xx).
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		(e.StatusCode >= 500 && e.StatusCode < 600)
}

// IsRetryable reports whether err is a provider status error worth retrying.
func IsRetryable(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Retryable()
}

// StatusCode extracts the provider status from err, or 0 when there is none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
