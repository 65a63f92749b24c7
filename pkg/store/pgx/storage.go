// Package pgx implements store.ArticleStorage on PostgreSQL with the
// pgvector extension.
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// ArticleDBStorage persists articles, summaries and embeddings in
// PostgreSQL. Embedding similarity queries run on pgvector.
type ArticleDBStorage struct {
	conn *pgxpool.Pool
}

// NewArticleDBStorage creates a storage backed by the given pool.
func NewArticleDBStorage(conn *pgxpool.Pool) *ArticleDBStorage {
	return &ArticleDBStorage{conn: conn}
}
