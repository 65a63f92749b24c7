package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/nodhq/nod/backend/pkg/store"
)

// CreateArticle inserts a new article and returns its public id.
func (s *ArticleDBStorage) CreateArticle(
	ctx context.Context,
	article *store.Article,
) (string, error) {
	publicID, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate article id: %w", err)
	}

	status := article.Status
	if status == "" {
		status = store.StatusPending
	}
	source := article.Source
	if source == "" {
		source = "web"
	}

	_, err = s.conn.Exec(ctx, `
		INSERT INTO articles (
			public_id, user_id, url, title, original_title, content,
			source, requested_language, status
		)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''), $9)`,
		publicID,
		article.UserID,
		article.URL,
		article.Title,
		article.OriginalTitle,
		article.Content,
		source,
		article.RequestedLanguage,
		string(status),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert article: %w", err)
	}

	return publicID, nil
}

const articleColumns = `
	a.public_id,
	a.user_id,
	COALESCE(a.url, ''),
	a.title,
	COALESCE(a.original_title, ''),
	a.content,
	a.source,
	COALESCE(a.requested_language, ''),
	a.status,
	a.created_at,
	COALESCE(a.updated_at, a.created_at),
	s.article_id IS NOT NULL,
	COALESCE(s.summary, ''),
	COALESCE(s.markdown_note, ''),
	COALESCE(s.concepts, '[]'::jsonb),
	COALESCE(s.root_concept_label, ''),
	COALESCE(s.root_concept_norm, ''),
	COALESCE(s.key_points, '[]'::jsonb),
	COALESCE(s.reading_time_minutes, 0),
	COALESCE(s.language, ''),
	COALESCE(s.content_type, ''),
	COALESCE(s.type_metadata, '{}'::jsonb),
	COALESCE(s.ai_provider, ''),
	COALESCE(s.ai_model, ''),
	EXISTS (SELECT 1 FROM article_embeddings e WHERE e.article_id = a.id)`

func scanArticle(row pgx.Row) (*store.Article, error) {
	var (
		article          store.Article
		summary          store.Summary
		hasSummary       bool
		conceptsJSON     []byte
		keyPointsJSON    []byte
		typeMetadataJSON []byte
	)

	err := row.Scan(
		&article.ID,
		&article.UserID,
		&article.URL,
		&article.Title,
		&article.OriginalTitle,
		&article.Content,
		&article.Source,
		&article.RequestedLanguage,
		&article.Status,
		&article.CreatedAt,
		&article.UpdatedAt,
		&hasSummary,
		&summary.Summary,
		&summary.MarkdownNote,
		&conceptsJSON,
		&summary.RootLabel,
		&summary.RootNorm,
		&keyPointsJSON,
		&summary.ReadingTimeMinutes,
		&summary.Language,
		&summary.ContentType,
		&typeMetadataJSON,
		&summary.Provider,
		&summary.Model,
		&article.HasEmbedding,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	if hasSummary {
		summary.Concepts = decodeStringList(conceptsJSON)
		summary.KeyPoints = decodeStringList(keyPointsJSON)
		if len(typeMetadataJSON) > 0 {
			_ = json.Unmarshal(typeMetadataJSON, &summary.TypeMetadata)
		}
		article.Summary = &summary
	}

	return &article, nil
}

// GetArticle fetches one article of the user, with its summary when present.
func (s *ArticleDBStorage) GetArticle(
	ctx context.Context,
	userID string,
	id string,
) (*store.Article, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles a
		LEFT JOIN article_summaries s ON s.article_id = a.id
		WHERE a.public_id = $1 AND a.user_id = $2`,
		id, userID,
	)
	return scanArticle(row)
}

// GetArticleForAnalysis fetches an article by id alone. Workers use this
// when acting on queue messages.
func (s *ArticleDBStorage) GetArticleForAnalysis(
	ctx context.Context,
	id string,
) (*store.Article, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles a
		LEFT JOIN article_summaries s ON s.article_id = a.id
		WHERE a.public_id = $1`,
		id,
	)
	return scanArticle(row)
}

// ListArticles returns a page of the user's articles, newest first, plus
// the total count matching the filter.
func (s *ArticleDBStorage) ListArticles(
	ctx context.Context,
	userID string,
	filter store.ListFilter,
) ([]*store.Article, int, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	search := ""
	if filter.Search != "" {
		search = "%" + filter.Search + "%"
	}

	var total int
	err := s.conn.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM articles a
		WHERE a.user_id = $1
		  AND ($2 = '' OR a.status = $2)
		  AND ($3 = '' OR a.title ILIKE $3 OR a.url ILIKE $3)`,
		userID, string(filter.Status), search,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	rows, err := s.conn.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles a
		LEFT JOIN article_summaries s ON s.article_id = a.id
		WHERE a.user_id = $1
		  AND ($2 = '' OR a.status = $2)
		  AND ($3 = '' OR a.title ILIKE $3 OR a.url ILIKE $3)
		ORDER BY a.created_at DESC
		LIMIT $4 OFFSET $5`,
		userID, string(filter.Status), search, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*store.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// DeleteArticle removes the user's article. Summaries and embeddings go
// with it through foreign key cascades.
func (s *ArticleDBStorage) DeleteArticle(ctx context.Context, userID, id string) error {
	tag, err := s.conn.Exec(ctx, `
		DELETE FROM articles WHERE public_id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// UpdateArticleContent stores fetched source material for an article.
// The original title is kept the first time a title is written.
func (s *ArticleDBStorage) UpdateArticleContent(
	ctx context.Context,
	id string,
	title string,
	content string,
) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE articles SET
			title = CASE WHEN $2 = '' THEN title ELSE $2 END,
			original_title = COALESCE(original_title, NULLIF($2, '')),
			content = $3,
			updated_at = now()
		WHERE public_id = $1`,
		id, title, content,
	)
	if err != nil {
		return fmt.Errorf("failed to update article content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SetArticleStatus moves an article to a new pipeline status.
func (s *ArticleDBStorage) SetArticleStatus(
	ctx context.Context,
	id string,
	status store.ArticleStatus,
) error {
	if !store.ValidStatus(status) {
		return fmt.Errorf("invalid article status: %s", status)
	}

	tag, err := s.conn.Exec(ctx, `
		UPDATE articles SET status = $2, updated_at = now()
		WHERE public_id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update article status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
