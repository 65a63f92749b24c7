package summarize

import (
	"strings"

	"github.com/nodhq/nod/backend/pkg/store"
)

// ContentTypeForRetry decides which content type a re-analysis should
// run under: the previous summary's type when valid, then the URL
// classification, then general news.
func ContentTypeForRetry(article *store.Article) ContentType {
	if article.Summary != nil {
		if ct := ContentType(article.Summary.ContentType); ValidContentType(ct) {
			return ct
		}
	}
	if article.URL != "" {
		return ClassifyURL(article.URL)
	}
	return GeneralNews
}

// LanguageForRetry decides which language a re-analysis should use: the
// previous summary's language, then the language requested at creation,
// then the default.
func LanguageForRetry(article *store.Article) string {
	if article.Summary != nil && strings.TrimSpace(article.Summary.Language) != "" {
		return article.Summary.Language
	}
	if strings.TrimSpace(article.RequestedLanguage) != "" {
		return article.RequestedLanguage
	}
	return DefaultLanguage
}
