package pgx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nodhq/nod/backend/pkg/store"
)

// decodeStringList reads a jsonb array and keeps only its string
// elements. Malformed payloads and non-string entries are dropped.
func decodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// SaveSummary upserts the analysis result for an article.
func (s *ArticleDBStorage) SaveSummary(
	ctx context.Context,
	articleID string,
	summary *store.Summary,
) error {
	concepts, err := json.Marshal(summary.Concepts)
	if err != nil {
		return fmt.Errorf("failed to encode concepts: %w", err)
	}
	keyPoints, err := json.Marshal(summary.KeyPoints)
	if err != nil {
		return fmt.Errorf("failed to encode key points: %w", err)
	}
	typeMetadata, err := json.Marshal(summary.TypeMetadata)
	if err != nil {
		return fmt.Errorf("failed to encode type metadata: %w", err)
	}

	tag, err := s.conn.Exec(ctx, `
		INSERT INTO article_summaries (
			article_id, summary, markdown_note, concepts,
			root_concept_label, root_concept_norm, key_points,
			reading_time_minutes, language, content_type,
			type_metadata, ai_provider, ai_model
		)
		SELECT a.id, $2, NULLIF($3, ''), $4,
			NULLIF($5, ''), NULLIF($6, ''), $7,
			NULLIF($8, 0), NULLIF($9, ''), $10,
			$11, $12, $13
		FROM articles a
		WHERE a.public_id = $1
		ON CONFLICT (article_id) DO UPDATE SET
			summary = EXCLUDED.summary,
			markdown_note = EXCLUDED.markdown_note,
			concepts = EXCLUDED.concepts,
			root_concept_label = EXCLUDED.root_concept_label,
			root_concept_norm = EXCLUDED.root_concept_norm,
			key_points = EXCLUDED.key_points,
			reading_time_minutes = EXCLUDED.reading_time_minutes,
			language = EXCLUDED.language,
			content_type = EXCLUDED.content_type,
			type_metadata = EXCLUDED.type_metadata,
			ai_provider = EXCLUDED.ai_provider,
			ai_model = EXCLUDED.ai_model,
			updated_at = now()`,
		articleID,
		summary.Summary,
		summary.MarkdownNote,
		concepts,
		summary.RootLabel,
		summary.RootNorm,
		keyPoints,
		summary.ReadingTimeMinutes,
		summary.Language,
		summary.ContentType,
		typeMetadata,
		summary.Provider,
		summary.Model,
	)
	if err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DistinctRootNorms returns the user's known concept norms ordered by
// first appearance, so resolution against them stays stable over time.
func (s *ArticleDBStorage) DistinctRootNorms(
	ctx context.Context,
	userID string,
) ([]string, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT s.root_concept_norm
		FROM article_summaries s
		JOIN articles a ON a.id = s.article_id
		WHERE a.user_id = $1 AND s.root_concept_norm IS NOT NULL
		GROUP BY s.root_concept_norm
		ORDER BY MIN(s.created_at)`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query root norms: %w", err)
	}
	defer rows.Close()

	var norms []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		norms = append(norms, n)
	}
	return norms, rows.Err()
}
