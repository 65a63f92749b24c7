package summarize

import (
	"testing"

	"github.com/nodhq/nod/backend/pkg/store"
)

func TestContentTypeForRetry(t *testing.T) {
	tests := []struct {
		name    string
		article store.Article
		want    ContentType
	}{
		{
			name: "summary type wins",
			article: store.Article{
				URL:     "https://github.com/x/y",
				Summary: &store.Summary{ContentType: "academic_paper"},
			},
			want: AcademicPaper,
		},
		{
			name: "invalid summary type falls back to url",
			article: store.Article{
				URL:     "https://github.com/x/y",
				Summary: &store.Summary{ContentType: "bogus"},
			},
			want: GitHubRepo,
		},
		{
			name:    "no summary classifies url",
			article: store.Article{URL: "https://arxiv.org/abs/1"},
			want:    AcademicPaper,
		},
		{
			name:    "nothing known",
			article: store.Article{},
			want:    GeneralNews,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ContentTypeForRetry(&tc.article)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLanguageForRetry(t *testing.T) {
	tests := []struct {
		name    string
		article store.Article
		want    string
	}{
		{
			name:    "summary language wins",
			article: store.Article{RequestedLanguage: "en", Summary: &store.Summary{Language: "ja"}},
			want:    "ja",
		},
		{
			name:    "requested language next",
			article: store.Article{RequestedLanguage: "en", Summary: &store.Summary{}},
			want:    "en",
		},
		{
			name:    "default last",
			article: store.Article{},
			want:    DefaultLanguage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LanguageForRetry(&tc.article)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
