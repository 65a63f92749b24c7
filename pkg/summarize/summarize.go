package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/nodhq/nod/backend/pkg/ai"
)

// maxContentTokens caps the article body included in one prompt.
const maxContentTokens = 6000

// Analysis is the outcome of one summarization call: the agent's base
// result plus the content type it ran under and its type metadata.
type Analysis struct {
	Result
	ContentType  ContentType
	TypeMetadata map[string]any
}

// Params describe one summarization request.
type Params struct {
	Title       string
	Content     string
	URL         string
	ContentType ContentType // zero value classifies from URL
	Language    string      // zero value falls back to DefaultLanguage
}

// Summarize runs the agent for the article's content type and returns
// the structured analysis.
func Summarize(
	ctx context.Context,
	client ai.ArticleAIClient,
	params Params,
) (*Analysis, error) {
	ct := params.ContentType
	if !ValidContentType(ct) {
		ct = ClassifyURL(params.URL)
	}
	lang := params.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	content, err := ai.TruncateTokens(params.Content, maxContentTokens)
	if err != nil {
		return nil, fmt.Errorf("failed to truncate content: %w", err)
	}

	agent := AgentFor(ct)
	out := agent.NewResult()

	prompt := agent.UserPrompt(params.Title, content, lang) +
		"\n\n" + jsonFieldsPrompt(lang)

	err = client.GenerateCompletionWithFormat(
		ctx,
		"article_analysis",
		"Structured analysis of one article",
		prompt,
		out,
		ai.WithSystemPrompts(agent.SystemPrompt(lang)),
		ai.WithTemperature(0.1),
	)
	if err != nil {
		return nil, fmt.Errorf("summarization failed: %w", err)
	}

	base := out.Base()
	if strings.TrimSpace(base.Summary) == "" {
		return nil, fmt.Errorf("model returned an empty summary")
	}
	if base.Language == "" {
		base.Language = lang
	}

	return &Analysis{
		Result:       *base,
		ContentType:  agent.ContentType(),
		TypeMetadata: out.TypeMetadata(),
	}, nil
}

// EmbeddingText builds the text an article embedding is computed from:
// title, summary and concepts joined into one block.
func EmbeddingText(title, summary string, concepts []string) string {
	return fmt.Sprintf("%s\n\n%s\n\nConcepts: %s",
		title, summary, strings.Join(concepts, ", "))
}
