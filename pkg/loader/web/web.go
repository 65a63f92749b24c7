package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nodhq/nod/backend/pkg/loader"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; nod/1.0; +https://github.com/nodhq/nod)"

	// maxBodyBytes caps how much of a response we are willing to read.
	maxBodyBytes = 10 << 20
)

// WebPageLoader fetches web pages and extracts their readable content.
// For HTML pages, it uses readability to isolate the main article text.
type WebPageLoader struct {
	client *http.Client

	cache   map[string]*loader.Page
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewWebPageLoader creates a web loader with a default HTTP client.
func NewWebPageLoader() *WebPageLoader {
	return &WebPageLoader{
		client: &http.Client{Timeout: defaultTimeout},
		cache:  make(map[string]*loader.Page),
	}
}

// NewWebPageLoaderWithClient creates a web loader using the given HTTP client.
func NewWebPageLoaderWithClient(client *http.Client) *WebPageLoader {
	return &WebPageLoader{
		client: client,
		cache:  make(map[string]*loader.Page),
	}
}

// Load fetches a URL and extracts its title and readable text.
// Concurrent loads of the same URL are collapsed into a single fetch.
func (l *WebPageLoader) Load(ctx context.Context, rawURL string) (*loader.Page, error) {
	l.cacheMu.RLock()
	if cached, ok := l.cache[rawURL]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(rawURL, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[rawURL]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		page, err := l.fetch(ctx, rawURL)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[rawURL] = page
		l.cacheMu.Unlock()

		return page, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*loader.Page), nil
}

func (l *WebPageLoader) fetch(ctx context.Context, rawURL string) (*loader.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch url: status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/html") {
		return &loader.Page{Text: string(body)}, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var builder strings.Builder
	if err := article.RenderText(&builder); err != nil {
		return nil, fmt.Errorf("failed to render article text: %w", err)
	}

	return &loader.Page{
		Title: extractTitle(body),
		Text:  builder.String(),
	}, nil
}

// extractTitle pulls a page title from the document head, falling back
// to the OpenGraph title and then the first h1.
func extractTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		return title
	}

	if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}

	return strings.TrimSpace(doc.Find("h1").First().Text())
}
