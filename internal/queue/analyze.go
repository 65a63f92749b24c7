package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nodhq/nod/backend/internal/storage"
	"github.com/nodhq/nod/backend/internal/util"
	"github.com/nodhq/nod/backend/pkg/ai"
	"github.com/nodhq/nod/backend/pkg/concept"
	"github.com/nodhq/nod/backend/pkg/loader"
	"github.com/nodhq/nod/backend/pkg/loader/pdf"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"
	"github.com/nodhq/nod/backend/pkg/summarize"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rabbitmq/amqp091-go"
)

// ProcessAnalyzeMessage runs the full analysis pipeline for one article:
// load its content, summarize it, resolve its concepts against the
// user's known norms and queue the embedding job.
func ProcessAnalyzeMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	aiClient ai.ArticleAIClient,
	pages loader.PageLoader,
	ch *amqp091.Channel,
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

	if err = st.SetArticleStatus(ctx, article.ID, store.StatusProcessing); err != nil {
		return err
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

	title := article.Title
	content := article.Content
	if strings.TrimSpace(content) == "" {
		title, content, err = loadContent(ctx, s3Client, pages, article)
		if err != nil {
			return err
		}
		content = util.SanitizePostgresText(content)
		if err = st.UpdateArticleContent(ctx, article.ID, title, content); err != nil {
			return err
		}
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("article %s has no content to analyze", article.ID)
	}

	analysis, err := summarize.Summarize(ctx, aiClient, summarize.Params{
		Title:       title,
		Content:     content,
		URL:         article.URL,
		ContentType: summarize.ContentTypeForRetry(article),
		Language:    summarize.LanguageForRetry(article),
	})
	if err != nil {
		return fmt.Errorf("failed to summarize article %s: %w", article.ID, err)
	}

	knownNorms, err := st.DistinctRootNorms(ctx, article.UserID)
	if err != nil {
		return err
	}

	candidates, _ := concept.ResolveCandidates(
		analysis.RootConcept,
		analysis.Concepts,
		knownNorms,
		concept.DefaultMaxCandidates,
		concept.DefaultThreshold,
	)

	summary := summaryForAnalysis(analysis, candidates, aiClient.Provider(), aiClient.ChatModel())
	if err = st.SaveSummary(ctx, article.ID, summary); err != nil {
		return err
	}

	if err = st.SetArticleStatus(ctx, article.ID, store.StatusAnalyzed); err != nil {
		return err
	}

	logger.Info("[Queue] Article analyzed",
		"article_id", article.ID,
		"content_type", analysis.ContentType,
		"root_norm", summary.RootNorm,
	)

	return PublishArticleJob(ch, EmbedQueue, article.ID)
}

// summaryForAnalysis merges the structured analysis with the resolved
// concept candidates into the row to persist. The stored concept list is
// the resolved labels, not the raw LLM output, so spelling variants of
// the same concept collapse before they reach the graph.
func summaryForAnalysis(
	analysis *summarize.Analysis,
	candidates []concept.Candidate,
	provider, model string,
) *store.Summary {
	concepts := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		concepts = append(concepts, cand.Label)
	}

	var rootLabel, rootNorm string
	if len(candidates) > 0 {
		rootLabel = candidates[0].Label
		rootNorm = candidates[0].Norm
	}

	return &store.Summary{
		Summary:            analysis.Summary,
		MarkdownNote:       analysis.MarkdownNote,
		Concepts:           concepts,
		RootLabel:          rootLabel,
		RootNorm:           rootNorm,
		KeyPoints:          analysis.KeyPoints,
		ReadingTimeMinutes: analysis.ReadingTimeMinutes,
		Language:           analysis.Language,
		ContentType:        string(analysis.ContentType),
		TypeMetadata:       analysis.TypeMetadata,
		Provider:           provider,
		Model:              model,
	}
}

// loadContent fetches the article source, either the uploaded PDF from
// object storage or the live web page.
func loadContent(
	ctx context.Context,
	s3Client *awss3.Client,
	pages loader.PageLoader,
	article *store.Article,
) (title, content string, err error) {
	title = article.Title

	if article.Source == store.SourcePDF {
		raw, err := storage.GetSource(ctx, s3Client, storage.SourceKey(article.ID))
		if err != nil {
			return "", "", err
		}
		text, err := pdf.ExtractText(ctx, raw)
		if err != nil {
			return "", "", err
		}
		return title, text, nil
	}

	if article.URL == "" {
		return "", "", fmt.Errorf("article %s has neither content nor url", article.ID)
	}

	page, err := pages.Load(ctx, article.URL)
	if err != nil {
		return "", "", err
	}
	if title == "" {
		title = page.Title
	}
	return title, page.Text, nil
}
