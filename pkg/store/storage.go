// Package store defines the persistence interfaces for articles, their AI
// summaries and their embeddings.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist or belongs
// to another user.
var ErrNotFound = errors.New("store: not found")

// ArticleStatus tracks an article through the analysis pipeline.
type ArticleStatus string

const (
	StatusPending    ArticleStatus = "pending"
	StatusProcessing ArticleStatus = "processing"
	StatusAnalyzed   ArticleStatus = "analyzed"
	StatusFailed     ArticleStatus = "failed"
	StatusCompleted  ArticleStatus = "completed"
)

// Article sources.
const (
	SourceWeb = "web"
	SourcePDF = "pdf"
)

// ValidStatus reports whether s is one of the known pipeline statuses.
func ValidStatus(s ArticleStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusAnalyzed, StatusFailed, StatusCompleted:
		return true
	}
	return false
}

// Article is one saved article. Summary is nil until analysis ran.
type Article struct {
	ID                string
	UserID            string
	URL               string
	Title             string
	OriginalTitle     string
	Content           string
	Source            string
	RequestedLanguage string
	Status            ArticleStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Summary      *Summary
	HasEmbedding bool
}

// Summary holds the AI analysis result for one article. TypeMetadata
// carries the content-type specific fields the analysis agents emit.
type Summary struct {
	Summary            string
	MarkdownNote       string
	Concepts           []string
	RootLabel          string
	RootNorm           string
	KeyPoints          []string
	ReadingTimeMinutes int
	Language           string
	ContentType        string
	TypeMetadata       map[string]any
	Provider           string
	Model              string
}

// Embedding is a dense vector for one article.
type Embedding struct {
	Vector   []float32
	Provider string
	Model    string
}

// ArticleConcepts is the slim projection the graph builders work on:
// a summarized article with its stored concept labels and root concept.
type ArticleConcepts struct {
	ID        string
	Title     string
	Concepts  []string
	RootLabel string
	RootNorm  string
}

// Neighbor is one article-to-article similarity pair from a KNN query.
type Neighbor struct {
	SourceID   string
	NeighborID string
	Similarity float64
}

// ListFilter narrows article listings. Search matches against title
// and url, case-insensitively.
type ListFilter struct {
	Status ArticleStatus
	Search string
	Limit  int
	Offset int
}

// GraphReader covers the read side the graph builders need.
type GraphReader interface {
	// CountAnalyzedArticles returns how many of the user's articles
	// reached analyzed or completed status.
	CountAnalyzedArticles(ctx context.Context, userID string) (int, error)

	// ListAnalyzedArticles returns every analyzed article of the user
	// joined with its summary concepts, newest first.
	ListAnalyzedArticles(ctx context.Context, userID string) ([]ArticleConcepts, error)

	// ListRecentAnalyzedArticles is ListAnalyzedArticles capped at limit.
	ListRecentAnalyzedArticles(ctx context.Context, userID string, limit int) ([]ArticleConcepts, error)

	// EmbeddedArticleIDs filters ids down to those that have an embedding.
	EmbeddedArticleIDs(ctx context.Context, ids []string) ([]string, error)

	// NearestNeighbors returns up to k nearest neighbors by cosine
	// similarity for every id in ids, restricted to the same id set.
	NearestNeighbors(ctx context.Context, ids []string, k int) ([]Neighbor, error)
}

// ArticleStorage is the full persistence surface of the article pipeline.
type ArticleStorage interface {
	GraphReader

	CreateArticle(ctx context.Context, article *Article) (string, error)
	GetArticle(ctx context.Context, userID, id string) (*Article, error)
	ListArticles(ctx context.Context, userID string, filter ListFilter) ([]*Article, int, error)
	DeleteArticle(ctx context.Context, userID, id string) error

	// GetArticleForAnalysis fetches an article by id only, for workers
	// that act on queue messages rather than user requests.
	GetArticleForAnalysis(ctx context.Context, id string) (*Article, error)
	SetArticleStatus(ctx context.Context, id string, status ArticleStatus) error

	// UpdateArticleContent stores fetched source material. Workers call
	// this after loading a page whose content was not supplied upfront.
	UpdateArticleContent(ctx context.Context, id, title, content string) error

	SaveSummary(ctx context.Context, articleID string, summary *Summary) error

	// DistinctRootNorms returns the user's known concept norms, oldest
	// first, so concept resolution sees a stable pool.
	DistinctRootNorms(ctx context.Context, userID string) ([]string, error)

	SaveEmbedding(ctx context.Context, articleID string, embedding *Embedding) error

	// SimilarArticles returns the k nearest analyzed articles of the
	// same user by embedding distance, excluding the article itself.
	SimilarArticles(ctx context.Context, userID, articleID string, k int) ([]Neighbor, error)
}
