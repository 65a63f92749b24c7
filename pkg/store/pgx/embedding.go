package pgx

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/nodhq/nod/backend/pkg/store"
)

// SaveEmbedding upserts the embedding vector for an article.
func (s *ArticleDBStorage) SaveEmbedding(
	ctx context.Context,
	articleID string,
	embedding *store.Embedding,
) error {
	tag, err := s.conn.Exec(ctx, `
		INSERT INTO article_embeddings (article_id, embedding, ai_provider, ai_model)
		SELECT a.id, $2, $3, $4
		FROM articles a
		WHERE a.public_id = $1
		ON CONFLICT (article_id) DO UPDATE SET
			embedding = EXCLUDED.embedding,
			ai_provider = EXCLUDED.ai_provider,
			ai_model = EXCLUDED.ai_model,
			updated_at = now()`,
		articleID,
		pgvector.NewVector(embedding.Vector),
		embedding.Provider,
		embedding.Model,
	)
	if err != nil {
		return fmt.Errorf("failed to save embedding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// EmbeddedArticleIDs returns the subset of ids that have an embedding.
func (s *ArticleDBStorage) EmbeddedArticleIDs(
	ctx context.Context,
	ids []string,
) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.conn.Query(ctx, `
		SELECT a.public_id
		FROM articles a
		JOIN article_embeddings e ON e.article_id = a.id
		WHERE a.public_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query embedded articles: %w", err)
	}
	defer rows.Close()

	var embedded []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		embedded = append(embedded, id)
	}
	return embedded, rows.Err()
}

// NearestNeighbors runs one lateral KNN query over pgvector, returning up
// to k cosine neighbors per source article, both sides restricted to ids.
func (s *ArticleDBStorage) NearestNeighbors(
	ctx context.Context,
	ids []string,
	k int,
) ([]store.Neighbor, error) {
	if len(ids) == 0 || k <= 0 {
		return nil, nil
	}

	rows, err := s.conn.Query(ctx, `
		SELECT sa.public_id, na.public_id, nn.sim
		FROM articles sa
		JOIN article_embeddings se ON se.article_id = sa.id
		JOIN LATERAL (
			SELECT e2.article_id,
				1 - (e2.embedding <=> se.embedding) AS sim
			FROM article_embeddings e2
			JOIN articles a2 ON a2.id = e2.article_id
			WHERE e2.article_id <> se.article_id
				AND a2.public_id = ANY($1)
			ORDER BY e2.embedding <=> se.embedding
			LIMIT $2
		) nn ON TRUE
		JOIN articles na ON na.id = nn.article_id
		WHERE sa.public_id = ANY($1)`,
		ids, k,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearest neighbors: %w", err)
	}
	defer rows.Close()

	var neighbors []store.Neighbor
	for rows.Next() {
		var n store.Neighbor
		if err := rows.Scan(&n.SourceID, &n.NeighborID, &n.Similarity); err != nil {
			return nil, err
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, rows.Err()
}

// SimilarArticles returns the user's k nearest analyzed articles to the
// given one by embedding distance.
func (s *ArticleDBStorage) SimilarArticles(
	ctx context.Context,
	userID string,
	articleID string,
	k int,
) ([]store.Neighbor, error) {
	if k <= 0 {
		return nil, nil
	}

	rows, err := s.conn.Query(ctx, `
		SELECT $2::text, a2.public_id, 1 - (e2.embedding <=> se.embedding)
		FROM articles sa
		JOIN article_embeddings se ON se.article_id = sa.id
		JOIN article_embeddings e2 ON e2.article_id <> se.article_id
		JOIN articles a2 ON a2.id = e2.article_id
		WHERE sa.public_id = $2
			AND sa.user_id = $1
			AND a2.user_id = $1
			AND a2.status IN ('analyzed', 'completed')
		ORDER BY e2.embedding <=> se.embedding
		LIMIT $3`,
		userID, articleID, k,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query similar articles: %w", err)
	}
	defer rows.Close()

	var neighbors []store.Neighbor
	for rows.Next() {
		var n store.Neighbor
		if err := rows.Scan(&n.SourceID, &n.NeighborID, &n.Similarity); err != nil {
			return nil, err
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, rows.Err()
}
