// Package loader retrieves article source material and turns it into
// plain text suitable for analysis.
package loader

import "context"

// Page is the extracted content of a single article source.
type Page struct {
	Title string
	Text  string
}

// PageLoader fetches a URL and extracts its readable content.
// Implementations may load pages over HTTP or from other sources.
type PageLoader interface {
	Load(ctx context.Context, rawURL string) (*Page, error)
}
