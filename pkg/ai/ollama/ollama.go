// Package ollama implements ai.ArticleAIClient against a locally-hosted
// Ollama instance.
package ollama

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/ollama/ollama/api"
	"golang.org/x/sync/semaphore"

	"github.com/nodhq/nod/backend/pkg/ai"
)

// ArticleOllamaClient talks to one Ollama server for both chat and
// embedding calls. A weighted semaphore caps concurrent requests since
// local instances degrade badly under parallel load.
type ArticleOllamaClient struct {
	chatModel      string
	embeddingModel string

	reqLock *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	Client *api.Client
}

// NewArticleOllamaClientParams contains configuration for NewArticleOllamaClient.
type NewArticleOllamaClientParams struct {
	ChatModel      string
	EmbeddingModel string

	BaseURL string
	ApiKey  string

	MaxConcurrentRequests int64
}

type headerTransport struct {
	headers map[string]string
	rt      http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(r)
}

// NewArticleOllamaClient creates a client for the given base URL. ApiKey
// is optional and sent as a bearer token when set.
func NewArticleOllamaClient(params NewArticleOllamaClientParams) (*ArticleOllamaClient, error) {
	baseURL, err := url.Parse(params.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := http.DefaultClient
	if params.ApiKey != "" {
		httpClient = &http.Client{
			Transport: &headerTransport{
				headers: map[string]string{
					"Authorization": "Bearer " + params.ApiKey,
				},
				rt: http.DefaultTransport,
			},
		}
	}

	concurrent := params.MaxConcurrentRequests
	if concurrent <= 0 {
		concurrent = 1
	}

	return &ArticleOllamaClient{
		chatModel:      params.ChatModel,
		embeddingModel: params.EmbeddingModel,
		reqLock:        semaphore.NewWeighted(concurrent),
		Client:         api.NewClient(baseURL, httpClient),
	}, nil
}

// Provider returns the provider tag recorded next to generated data.
func (c *ArticleOllamaClient) Provider() string {
	return "ollama"
}

// ChatModel returns the configured chat model name.
func (c *ArticleOllamaClient) ChatModel() string {
	return c.chatModel
}

// EmbeddingModel returns the configured embedding model name.
func (c *ArticleOllamaClient) EmbeddingModel() string {
	return c.embeddingModel
}

// ResetMetrics clears all accumulated token and timing metrics to zero.
func (c *ArticleOllamaClient) ResetMetrics() {
	c.metricsLock.Lock()
	c.metrics = ai.ModelMetrics{}
	c.metricsLock.Unlock()
}

// GetMetrics returns the accumulated metrics since the last reset.
func (c *ArticleOllamaClient) GetMetrics() ai.ModelMetrics {
	return c.metrics
}

func (c *ArticleOllamaClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}
