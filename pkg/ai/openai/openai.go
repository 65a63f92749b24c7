// Package openai implements ai.ArticleAIClient on the OpenAI API, or any
// OpenAI-compatible endpoint reachable by base URL.
package openai

import (
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/nodhq/nod/backend/pkg/ai"
)

// ArticleOpenAIClient manages separate OpenAI clients for chat and
// embedding calls, so both can point at different endpoints.
type ArticleOpenAIClient struct {
	chatModel      string
	embeddingModel string

	chatURL      string
	embeddingURL string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient      *openai.Client
	EmbeddingClient *openai.Client
}

// NewArticleOpenAIClientParams configures NewArticleOpenAIClient. Empty
// URLs fall back to the public OpenAI endpoint.
type NewArticleOpenAIClientParams struct {
	ChatModel      string
	EmbeddingModel string

	ChatURL      string
	ChatKey      string
	EmbeddingURL string
	EmbeddingKey string
}

// NewArticleOpenAIClient creates a client pair from the given parameters.
func NewArticleOpenAIClient(params NewArticleOpenAIClientParams) *ArticleOpenAIClient {
	return &ArticleOpenAIClient{
		chatModel:      params.ChatModel,
		embeddingModel: params.EmbeddingModel,

		chatURL:      params.ChatURL,
		embeddingURL: params.EmbeddingURL,

		ChatClient:      newOpenaiClient(params.ChatURL, params.ChatKey),
		EmbeddingClient: newOpenaiClient(params.EmbeddingURL, params.EmbeddingKey),
	}
}

// Provider returns the provider tag recorded next to generated data.
func (c *ArticleOpenAIClient) Provider() string {
	return "openai"
}

// ChatModel returns the configured chat model name.
func (c *ArticleOpenAIClient) ChatModel() string {
	return c.chatModel
}

// EmbeddingModel returns the configured embedding model name.
func (c *ArticleOpenAIClient) EmbeddingModel() string {
	return c.embeddingModel
}

// ResetMetrics clears all accumulated token and timing metrics to zero.
func (c *ArticleOpenAIClient) ResetMetrics() {
	c.metricsLock.Lock()
	c.metrics = ai.ModelMetrics{}
	c.metricsLock.Unlock()
}

// GetMetrics returns the accumulated metrics since the last reset.
func (c *ArticleOpenAIClient) GetMetrics() ai.ModelMetrics {
	return c.metrics
}

func (c *ArticleOpenAIClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}

func newOpenaiClient(baseURL, apiKey string) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)
	return &client
}
