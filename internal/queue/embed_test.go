package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nodhq/nod/backend/pkg/ai"
	"github.com/nodhq/nod/backend/pkg/store"
)

type fakeAIClient struct {
	embedding []float32
	lastInput string
}

func (f *fakeAIClient) GenerateCompletionWithFormat(
	ctx context.Context,
	name, description, prompt string,
	out any,
	opts ...ai.GenerateOption,
) error {
	return nil
}

func (f *fakeAIClient) GenerateEmbedding(ctx context.Context, input []byte) ([]float32, error) {
	f.lastInput = string(input)
	return f.embedding, nil
}

func (f *fakeAIClient) Provider() string            { return "fake" }
func (f *fakeAIClient) ChatModel() string           { return "fake-chat" }
func (f *fakeAIClient) EmbeddingModel() string      { return "fake-embed" }
func (f *fakeAIClient) GetMetrics() ai.ModelMetrics { return ai.ModelMetrics{} }
func (f *fakeAIClient) ResetMetrics()               {}

type fakeStorage struct {
	store.ArticleStorage

	articles  map[string]*store.Article
	statuses  map[string]store.ArticleStatus
	embedding *store.Embedding
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		articles: make(map[string]*store.Article),
		statuses: make(map[string]store.ArticleStatus),
	}
}

func (f *fakeStorage) GetArticleForAnalysis(ctx context.Context, id string) (*store.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return article, nil
}

func (f *fakeStorage) SetArticleStatus(ctx context.Context, id string, status store.ArticleStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeStorage) SaveEmbedding(ctx context.Context, articleID string, embedding *store.Embedding) error {
	f.embedding = embedding
	return nil
}

func embedMsg(t *testing.T, id string) string {
	t.Helper()
	body, err := json.Marshal(ArticleJobMsg{ArticleID: id})
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestProcessEmbedMessage(t *testing.T) {
	st := newFakeStorage()
	st.articles["a1"] = &store.Article{
		ID:    "a1",
		Title: "TypeScript Generics",
		Summary: &store.Summary{
			Summary:  "An introduction to generics.",
			Concepts: []string{"TypeScript", "Generics"},
		},
	}
	client := &fakeAIClient{embedding: []float32{0.1, 0.2, 0.3}}

	err := ProcessEmbedMessage(context.Background(), client, st, embedMsg(t, "a1"))
	if err != nil {
		t.Fatalf("ProcessEmbedMessage() error = %v", err)
	}

	if st.embedding == nil {
		t.Fatal("embedding was not saved")
	}
	if len(st.embedding.Vector) != 3 {
		t.Fatalf("saved vector length = %d, want 3", len(st.embedding.Vector))
	}
	if st.embedding.Provider != "fake" || st.embedding.Model != "fake-embed" {
		t.Fatalf("embedding provenance = %s/%s, want fake/fake-embed", st.embedding.Provider, st.embedding.Model)
	}
	if st.statuses["a1"] != store.StatusCompleted {
		t.Fatalf("status = %s, want %s", st.statuses["a1"], store.StatusCompleted)
	}

	want := "TypeScript Generics\n\nAn introduction to generics.\n\nConcepts: TypeScript, Generics"
	if client.lastInput != want {
		t.Fatalf("embedding input = %q, want %q", client.lastInput, want)
	}
}

func TestProcessEmbedMessageNoSummary(t *testing.T) {
	st := newFakeStorage()
	st.articles["a1"] = &store.Article{ID: "a1", Title: "No summary yet"}
	client := &fakeAIClient{embedding: []float32{0.1}}

	err := ProcessEmbedMessage(context.Background(), client, st, embedMsg(t, "a1"))
	if err == nil {
		t.Fatal("expected error for article without summary")
	}
	if st.embedding != nil {
		t.Fatal("embedding should not be saved without a summary")
	}
}

func TestProcessEmbedMessageMissingArticle(t *testing.T) {
	st := newFakeStorage()
	client := &fakeAIClient{}

	err := ProcessEmbedMessage(context.Background(), client, st, embedMsg(t, "missing"))
	if err == nil {
		t.Fatal("expected error for missing article")
	}
}
