package graph

import (
	"context"
	"fmt"
	"sort"
)

// buildOverview returns the user's most frequent root concepts as
// isolated nodes, capped at maxNodes.
func (b *Builder) buildOverview(
	ctx context.Context,
	userID string,
	maxNodes int,
) (*Response, error) {
	articles, err := b.store.ListAnalyzedArticles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load analyzed articles: %w", err)
	}

	counts, labels, order, roots := aggregateRoots(articles)

	// Frequency order, first appearance breaking ties.
	selected := make([]string, len(order))
	copy(selected, order)
	sort.SliceStable(selected, func(i, j int) bool {
		return counts[selected[i]] > counts[selected[j]]
	})
	if len(selected) > maxNodes {
		selected = selected[:maxNodes]
	}

	nodes := make([]Node, 0, len(selected))
	for _, norm := range selected {
		lc, ok := labels[norm]
		if !ok {
			continue
		}
		nodes = append(nodes, Node{
			ID:    conceptNodePrefix + norm,
			Label: lc.mostFrequent(norm),
			Value: counts[norm],
			Kind:  NodeKindConcept,
		})
	}

	return &Response{
		Nodes: nodes,
		Edges: []Edge{},
		Meta: Meta{
			TotalArticles:       len(roots),
			TotalUniqueConcepts: len(counts),
			ReturnedNodes:       len(nodes),
			ReturnedEdges:       0,
			MaxNodes:            maxNodes,
		},
	}, nil
}
