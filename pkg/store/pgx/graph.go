package pgx

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nodhq/nod/backend/pkg/store"
)

// CountAnalyzedArticles counts the user's articles in analyzed or
// completed status.
func (s *ArticleDBStorage) CountAnalyzedArticles(
	ctx context.Context,
	userID string,
) (int, error) {
	var count int
	err := s.conn.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM articles
		WHERE user_id = $1 AND status IN ('analyzed', 'completed')`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyzed articles: %w", err)
	}
	return count, nil
}

const analyzedArticlesQuery = `
	SELECT a.public_id, a.title,
		COALESCE(s.concepts, '[]'::jsonb),
		COALESCE(s.root_concept_label, ''),
		COALESCE(s.root_concept_norm, '')
	FROM article_summaries s
	JOIN articles a ON a.id = s.article_id
	WHERE a.user_id = $1 AND a.status IN ('analyzed', 'completed')
	ORDER BY a.created_at DESC, a.id DESC`

func scanArticleConcepts(rows pgx.Rows) ([]store.ArticleConcepts, error) {
	var articles []store.ArticleConcepts
	for rows.Next() {
		var (
			ac       store.ArticleConcepts
			concepts []byte
		)
		if err := rows.Scan(&ac.ID, &ac.Title, &concepts, &ac.RootLabel, &ac.RootNorm); err != nil {
			return nil, err
		}
		ac.Concepts = decodeStringList(concepts)
		articles = append(articles, ac)
	}
	return articles, rows.Err()
}

// ListAnalyzedArticles returns the user's summarized articles with their
// stored concepts, newest first.
func (s *ArticleDBStorage) ListAnalyzedArticles(
	ctx context.Context,
	userID string,
) ([]store.ArticleConcepts, error) {
	rows, err := s.conn.Query(ctx, analyzedArticlesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyzed articles: %w", err)
	}
	defer rows.Close()

	return scanArticleConcepts(rows)
}

// ListRecentAnalyzedArticles is ListAnalyzedArticles capped at limit.
func (s *ArticleDBStorage) ListRecentAnalyzedArticles(
	ctx context.Context,
	userID string,
	limit int,
) ([]store.ArticleConcepts, error) {
	rows, err := s.conn.Query(ctx, analyzedArticlesQuery+`
	LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyzed articles: %w", err)
	}
	defer rows.Close()

	return scanArticleConcepts(rows)
}
