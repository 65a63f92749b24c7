package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/nodhq/nod/backend/pkg/concept"
	"github.com/nodhq/nod/backend/pkg/store"
)

// resolvedRoot is one analyzed article reduced to its root concept.
type resolvedRoot struct {
	articleID string
	title     string
	label     string
	norm      string
}

// aggregateRoots resolves every article to its root concept and tallies
// norm frequencies and the labels seen per norm. Articles without a
// usable root are left out.
func aggregateRoots(articles []store.ArticleConcepts) (
	counts map[string]int,
	labels map[string]labelCount,
	order []string,
	roots []resolvedRoot,
) {
	counts = make(map[string]int)
	labels = make(map[string]labelCount)

	for _, a := range articles {
		root, ok := effectiveRoot(a)
		if !ok {
			continue
		}
		if counts[root.norm] == 0 {
			order = append(order, root.norm)
		}
		counts[root.norm]++
		lc, ok := labels[root.norm]
		if !ok {
			lc = make(labelCount)
			labels[root.norm] = lc
		}
		lc[root.label]++
		roots = append(roots, resolvedRoot{
			articleID: a.ID,
			title:     a.Title,
			label:     root.label,
			norm:      root.norm,
		})
	}
	return counts, labels, order, roots
}

// buildFocused returns the star graph around one requested concept: the
// concept node plus every article whose root concept matches it.
func (b *Builder) buildFocused(
	ctx context.Context,
	userID string,
	root string,
	maxNodes int,
) (*Response, error) {
	articles, err := b.store.ListAnalyzedArticles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load analyzed articles: %w", err)
	}

	_, labels, _, roots := aggregateRoots(articles)

	requested := strings.TrimSpace(root)
	requested = strings.TrimPrefix(requested, conceptNodePrefix)
	requestedNorm := concept.Normalize(requested)
	if requestedNorm == "" {
		return emptyResponse(maxNodes, 0), nil
	}

	var matching []resolvedRoot
	for _, r := range roots {
		if r.norm == requestedNorm {
			matching = append(matching, r)
		}
	}
	if limit := maxNodes - 1; limit >= 0 && len(matching) > limit {
		matching = matching[:limit]
	}
	if len(matching) == 0 {
		return emptyResponse(maxNodes, 0), nil
	}

	rootLabel := requestedNorm
	if lc, ok := labels[requestedNorm]; ok {
		rootLabel = lc.mostFrequent(requestedNorm)
	}
	rootNodeID := conceptNodePrefix + requestedNorm

	nodes := make([]Node, 0, len(matching)+1)
	nodes = append(nodes, Node{
		ID:    rootNodeID,
		Label: rootLabel,
		Value: len(matching),
		Kind:  NodeKindConcept,
	})

	edges := make([]Edge, 0, len(matching))
	for _, m := range matching {
		articleNodeID := articleNodePrefix + m.articleID
		nodes = append(nodes, Node{
			ID:        articleNodeID,
			Label:     m.title,
			Value:     1,
			Kind:      NodeKindArticle,
			ArticleID: m.articleID,
		})
		edges = append(edges, Edge{
			Source: rootNodeID,
			Target: articleNodeID,
			Weight: 1,
		})
	}

	return &Response{
		Nodes: nodes,
		Edges: edges,
		Meta: Meta{
			TotalArticles:       len(matching),
			TotalUniqueConcepts: 1,
			ReturnedNodes:       len(nodes),
			ReturnedEdges:       len(edges),
			MaxNodes:            maxNodes,
		},
	}, nil
}
