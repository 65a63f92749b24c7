// Package graph assembles concept graph responses over stored article
// summaries. Three shapes exist: a focused graph around one concept, an
// overview of the most frequent root concepts, and a global graph that
// mixes concept and article nodes with similarity edges.
package graph

import (
	"context"
	"strings"

	"github.com/nodhq/nod/backend/pkg/store"
)

const (
	// NodeKindConcept marks aggregated concept nodes.
	NodeKindConcept = "concept"
	// NodeKindArticle marks individual article nodes.
	NodeKindArticle = "article"

	conceptNodePrefix = "concept:"
	articleNodePrefix = "article:"

	// DefaultMaxNodes bounds the response size when the caller gives none.
	DefaultMaxNodes = 1000
)

// Node is one graph vertex. ArticleID is set for article nodes only.
type Node struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Value     int    `json:"value"`
	Kind      string `json:"kind"`
	ArticleID string `json:"article_id,omitempty"`
}

// Edge is one undirected graph edge, stored with its endpoints in
// lexicographic order.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Meta describes the graph beyond the returned slice of nodes.
type Meta struct {
	TotalArticles       int `json:"total_articles"`
	TotalUniqueConcepts int `json:"total_unique_concepts"`
	ReturnedNodes       int `json:"returned_nodes"`
	ReturnedEdges       int `json:"returned_edges"`
	MaxNodes            int `json:"max_nodes"`
}

// Response is a complete concept graph payload.
type Response struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Meta  Meta   `json:"meta"`
}

// Builder assembles graph responses from stored article data.
type Builder struct {
	store store.GraphReader
}

// NewBuilder creates a graph builder on top of the given reader.
func NewBuilder(s store.GraphReader) *Builder {
	return &Builder{store: s}
}

// Build dispatches on mode and root: global mode without a root yields
// the global graph, a non-empty root yields the focused graph, anything
// else the overview.
func (b *Builder) Build(
	ctx context.Context,
	userID string,
	root string,
	mode string,
	maxNodes int,
) (*Response, error) {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	if mode == "global" && strings.TrimSpace(root) == "" {
		return b.buildGlobal(ctx, userID, maxNodes)
	}
	if strings.TrimSpace(root) != "" {
		return b.buildFocused(ctx, userID, root, maxNodes)
	}
	return b.buildOverview(ctx, userID, maxNodes)
}

func emptyResponse(maxNodes, totalArticles int) *Response {
	return &Response{
		Nodes: []Node{},
		Edges: []Edge{},
		Meta: Meta{
			TotalArticles: totalArticles,
			MaxNodes:      maxNodes,
		},
	}
}
