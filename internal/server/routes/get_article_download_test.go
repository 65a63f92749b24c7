package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

type fakeArticleStore struct {
	store.ArticleStorage
	articles map[string]*store.Article
}

func (f *fakeArticleStore) GetArticle(ctx context.Context, userID, id string) (*store.Article, error) {
	if a, ok := f.articles[id]; ok {
		return a, nil
	}
	return nil, store.ErrNotFound
}

func TestGetArticleDownloadHandlerRejectsWebArticles(t *testing.T) {
	fs := &fakeArticleStore{articles: map[string]*store.Article{
		"a1": {ID: "a1", Source: store.SourceWeb},
	}}

	tests := []struct {
		name       string
		articleID  string
		wantStatus int
	}{
		{name: "web article has no source file", articleID: "a1", wantStatus: http.StatusNotFound},
		{name: "missing article", articleID: "nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.articleID)
			ac := &middleware.AppContext{
				Context: c,
				App:     &middleware.App{Store: fs},
				User:    &middleware.AppUser{UserID: "u1"},
			}

			if err := GetArticleDownloadHandler(ac); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
