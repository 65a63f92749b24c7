package routes

import (
	"time"

	"github.com/nodhq/nod/backend/pkg/store"
)

type summaryResponse struct {
	Summary            string         `json:"summary"`
	MarkdownNote       string         `json:"markdown_note,omitempty"`
	Concepts           []string       `json:"concepts"`
	RootConceptLabel   string         `json:"root_concept_label,omitempty"`
	RootConceptNorm    string         `json:"root_concept_norm,omitempty"`
	KeyPoints          []string       `json:"key_points"`
	ReadingTimeMinutes int            `json:"reading_time_minutes,omitempty"`
	Language           string         `json:"language,omitempty"`
	ContentType        string         `json:"content_type,omitempty"`
	TypeMetadata       map[string]any `json:"type_metadata,omitempty"`
	AIProvider         string         `json:"ai_provider,omitempty"`
	AIModel            string         `json:"ai_model,omitempty"`
}

type articleResponse struct {
	ID                string           `json:"id"`
	URL               string           `json:"url,omitempty"`
	Title             string           `json:"title"`
	OriginalTitle     string           `json:"original_title,omitempty"`
	Content           string           `json:"content,omitempty"`
	Source            string           `json:"source"`
	RequestedLanguage string           `json:"requested_language,omitempty"`
	Status            string           `json:"status"`
	HasEmbedding      bool             `json:"has_embedding"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Summary           *summaryResponse `json:"summary,omitempty"`
}

// toArticleResponse maps a stored article onto the API shape. Content is
// only included for detail views.
func toArticleResponse(a *store.Article, includeContent bool) articleResponse {
	resp := articleResponse{
		ID:                a.ID,
		URL:               a.URL,
		Title:             a.Title,
		OriginalTitle:     a.OriginalTitle,
		Source:            a.Source,
		RequestedLanguage: a.RequestedLanguage,
		Status:            string(a.Status),
		HasEmbedding:      a.HasEmbedding,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if includeContent {
		resp.Content = a.Content
	}
	if a.Summary != nil {
		s := a.Summary
		resp.Summary = &summaryResponse{
			Summary:            s.Summary,
			MarkdownNote:       s.MarkdownNote,
			Concepts:           s.Concepts,
			RootConceptLabel:   s.RootLabel,
			RootConceptNorm:    s.RootNorm,
			KeyPoints:          s.KeyPoints,
			ReadingTimeMinutes: s.ReadingTimeMinutes,
			Language:           s.Language,
			ContentType:        s.ContentType,
			TypeMetadata:       s.TypeMetadata,
			AIProvider:         s.Provider,
			AIModel:            s.Model,
		}
	}
	return resp
}
