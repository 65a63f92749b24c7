package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nodhq/nod/backend/internal/util"
	"github.com/nodhq/nod/backend/pkg/ai"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"
	"github.com/nodhq/nod/backend/pkg/summarize"
)

// ProcessEmbedMessage generates and stores the embedding for an analyzed
// article, then marks it completed.
func ProcessEmbedMessage(
	ctx context.Context,
	aiClient ai.ArticleAIClient,
	st store.ArticleStorage,
	msg string,
) (err error) {
	data := new(ArticleJobMsg)
	if err = json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}

	article, err := st.GetArticleForAnalysis(ctx, data.ArticleID)
	if err != nil {
		return fmt.Errorf("failed to load article %s: %w", data.ArticleID, err)
	}
	if article.Summary == nil {
		return fmt.Errorf("article %s has no summary to embed", article.ID)
	}

	defer func() {
		if err == nil {
			return
		}
		updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if updateErr := st.SetArticleStatus(updateCtx, article.ID, store.StatusFailed); updateErr != nil {
			logger.Warn("[Queue] Failed to mark article as failed", "article_id", article.ID, "err", updateErr)
		}
	}()

	text := summarize.EmbeddingText(
		article.Title,
		article.Summary.Summary,
		article.Summary.Concepts,
	)

	vector, err := util.Retry(3, func() ([]float32, error) {
		return aiClient.GenerateEmbedding(ctx, []byte(text))
	})
	if err != nil {
		return fmt.Errorf("failed to embed article %s: %w", article.ID, err)
	}

	embedding := &store.Embedding{
		Vector:   vector,
		Provider: aiClient.Provider(),
		Model:    aiClient.EmbeddingModel(),
	}
	if err = st.SaveEmbedding(ctx, article.ID, embedding); err != nil {
		return err
	}

	if err = st.SetArticleStatus(ctx, article.ID, store.StatusCompleted); err != nil {
		return err
	}

	logger.Info("[Queue] Article embedded", "article_id", article.ID, "dimensions", len(vector))
	return nil
}
