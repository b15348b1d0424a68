package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultOpenRouterBaseURL is the OpenAI-compatible OpenRouter endpoint.
const DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1/"

// OpenAIProvider talks to any Chat Completions compatible API.
type OpenAIProvider struct {
	client  openai.Client
	name    string
	siteURL string
}

// NewOpenAIProvider creates a Chat Completions provider. SDK retries are
// disabled; the gateway owns the retry policy.
func NewOpenAIProvider(name, apiKey, baseURL, siteURL string, httpClient *http.Client) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenAIProvider{
		client:  openai.NewClient(opts...),
		name:    name,
		siteURL: siteURL,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Complete sends one chat completion request for model.
func (p *OpenAIProvider) Complete(ctx context.Context, model string, req Request) (*Completion, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	var reqOpts []option.RequestOption
	if p.siteURL != "" {
		reqOpts = append(reqOpts, option.WithHeader("HTTP-Referer", p.siteURL))
		if req.Title != "" {
			reqOpts = append(reqOpts, option.WithHeader("X-Title", req.Title))
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params, reqOpts...)
	if err != nil {
		return nil, convertOpenAIError(err)
	}

	out := &Completion{
		Model: model,
		Raw:   json.RawMessage(resp.RawJSON()),
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
	}
	return out, nil
}

func convertOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &StatusError{StatusCode: apiErr.StatusCode, Message: apiErr.Error()}
	}
	return err
}
