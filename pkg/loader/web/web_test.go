package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "head title",
			html: `<html><head><title> Go Concurrency Patterns </title></head><body><h1>Other</h1></body></html>`,
			want: "Go Concurrency Patterns",
		},
		{
			name: "og title fallback",
			html: `<html><head><meta property="og:title" content="OpenGraph Title"></head><body></body></html>`,
			want: "OpenGraph Title",
		},
		{
			name: "h1 fallback",
			html: `<html><head></head><body><h1>Heading Title</h1></body></html>`,
			want: "Heading Title",
		},
		{
			name: "no title",
			html: `<html><body><p>text</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTitle([]byte(tt.html))
			if got != tt.want {
				t.Fatalf("extractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadPlainText(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("raw body"))
	}))
	defer srv.Close()

	l := NewWebPageLoader()
	page, err := l.Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if page.Text != "raw body" {
		t.Fatalf("Load() text = %q, want %q", page.Text, "raw body")
	}
	if page.Title != "" {
		t.Fatalf("Load() title = %q, want empty", page.Title)
	}

	// Second load is served from cache.
	if _, err := l.Load(context.Background(), srv.URL); err != nil {
		t.Fatalf("Load() second call error = %v", err)
	}
	if hits != 1 {
		t.Fatalf("server hits = %d, want 1", hits)
	}
}

func TestLoadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	l := NewWebPageLoader()
	if _, err := l.Load(context.Background(), srv.URL); err == nil {
		t.Fatal("Load() expected error for 404 response")
	}
}
