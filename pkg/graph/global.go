package graph

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/nodhq/nod/backend/pkg/concept"
)

const (
	globalMinNodes = 100
	globalMaxNodes = 1000

	// perArticleConcepts caps how many concepts one article contributes.
	perArticleConcepts = 2
	// kNeighbors is the per-article fan-out of the similarity query.
	kNeighbors = 10

	// articleShare is the fraction of the node budget spent on articles.
	articleShare = 0.65

	conceptEdgeWeight = 10
	bridgeEdgeWeight  = 30
)

// buildGlobal assembles the mixed concept/article graph: the most recent
// articles within budget, their top concepts re-clustered for display,
// and article-to-article similarity edges from pgvector.
func (b *Builder) buildGlobal(
	ctx context.Context,
	userID string,
	maxNodes int,
) (*Response, error) {
	if maxNodes < globalMinNodes {
		maxNodes = globalMinNodes
	}
	if maxNodes > globalMaxNodes {
		maxNodes = globalMaxNodes
	}

	articleBudget := int(float64(maxNodes) * articleShare)
	conceptBudget := maxNodes - articleBudget

	totalArticles, err := b.store.CountAnalyzedArticles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	articles, err := b.store.ListRecentAnalyzedArticles(ctx, userID, articleBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to load analyzed articles: %w", err)
	}

	// Re-cluster stored norms for this response only. Redirects cache
	// every raw norm's resolution so repeats stay consistent, and norms
	// accepted earlier in the pass attract later near-duplicates.
	conceptCounts := make(map[string]int)
	conceptLabels := make(map[string]labelCount)
	var knownNorms []string
	redirects := make(map[string]string)

	articleConcepts := make(map[string][]string)
	articleTitles := make(map[string]string)
	var articleOrder []string

	for _, a := range articles {
		pairs := extractConcepts(a, perArticleConcepts)
		if len(pairs) == 0 {
			continue
		}

		articleTitles[a.ID] = a.Title
		var finalNorms []string
		seen := make(map[string]struct{})

		for _, pair := range pairs {
			finalNorm, ok := redirects[pair.norm]
			if !ok {
				finalNorm = concept.Resolve(pair.norm, knownNorms, concept.DefaultThreshold)
				redirects[pair.norm] = finalNorm
			}

			if _, dup := seen[finalNorm]; dup {
				continue
			}
			seen[finalNorm] = struct{}{}
			finalNorms = append(finalNorms, finalNorm)
			if conceptCounts[finalNorm] == 0 {
				knownNorms = append(knownNorms, finalNorm)
			}
			conceptCounts[finalNorm]++
			lc, ok := conceptLabels[finalNorm]
			if !ok {
				lc = make(labelCount)
				conceptLabels[finalNorm] = lc
			}
			lc[pair.label]++
		}

		articleConcepts[a.ID] = finalNorms
		articleOrder = append(articleOrder, a.ID)
	}

	if len(articleOrder) == 0 {
		return emptyResponse(maxNodes, totalArticles), nil
	}

	// Every article's first norm is a root and gets a node, capped at
	// the concept budget so the response stays within maxNodes.
	rootNorms := make(map[string]struct{})
	for _, id := range articleOrder {
		if norms := articleConcepts[id]; len(norms) > 0 {
			rootNorms[norms[0]] = struct{}{}
		}
	}

	sortedRoots := make([]string, 0, len(rootNorms))
	for norm := range rootNorms {
		sortedRoots = append(sortedRoots, norm)
	}
	sort.Strings(sortedRoots)

	var selected []string
	selectedSet := make(map[string]struct{})
	appendNorm := func(norm string) {
		if _, dup := selectedSet[norm]; dup {
			return
		}
		selectedSet[norm] = struct{}{}
		selected = append(selected, norm)
	}
	for _, norm := range sortedRoots {
		if len(selected) >= conceptBudget {
			break
		}
		appendNorm(norm)
	}

	// Fill the remaining budget with the most frequent norms, first
	// appearance breaking ties.
	byFrequency := make([]string, len(knownNorms))
	copy(byFrequency, knownNorms)
	sort.SliceStable(byFrequency, func(i, j int) bool {
		return conceptCounts[byFrequency[i]] > conceptCounts[byFrequency[j]]
	})
	for _, norm := range byFrequency {
		if len(selected) >= conceptBudget {
			break
		}
		appendNorm(norm)
	}

	nodes := make([]Node, 0, len(selected)+len(articleOrder))
	for _, norm := range selected {
		label := norm
		if lc, ok := conceptLabels[norm]; ok {
			label = lc.mostFrequent(norm)
		}
		nodes = append(nodes, Node{
			ID:    conceptNodePrefix + norm,
			Label: label,
			Value: conceptCounts[norm],
			Kind:  NodeKindConcept,
		})
	}
	for _, id := range articleOrder {
		nodes = append(nodes, Node{
			ID:        articleNodePrefix + id,
			Label:     articleTitles[id],
			Value:     1,
			Kind:      NodeKindArticle,
			ArticleID: id,
		})
	}

	edgeSet := make(map[[2]string]struct{})
	var edges []Edge
	addEdge := func(a, b string, weight int) {
		if a == b {
			return
		}
		key := [2]string{a, b}
		if b < a {
			key = [2]string{b, a}
		}
		if _, dup := edgeSet[key]; dup {
			return
		}
		edgeSet[key] = struct{}{}
		edges = append(edges, Edge{Source: key[0], Target: key[1], Weight: weight})
	}

	for _, id := range articleOrder {
		articleNode := articleNodePrefix + id
		for _, norm := range articleConcepts[id] {
			if _, ok := selectedSet[norm]; !ok {
				continue
			}
			addEdge(articleNode, conceptNodePrefix+norm, conceptEdgeWeight)
		}
	}

	embedded, err := b.store.EmbeddedArticleIDs(ctx, articleOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to query embedded articles: %w", err)
	}

	if len(embedded) > 0 {
		neighbors, err := b.store.NearestNeighbors(ctx, embedded, kNeighbors)
		if err != nil {
			return nil, fmt.Errorf("failed to query nearest neighbors: %w", err)
		}
		for _, n := range neighbors {
			if n.SourceID == n.NeighborID || n.Similarity <= 0 {
				continue
			}
			weight := int(math.Round(n.Similarity * 100))
			if weight < 1 {
				weight = 1
			}
			if weight > 100 {
				weight = 100
			}
			addEdge(articleNodePrefix+n.SourceID, articleNodePrefix+n.NeighborID, weight)
		}
	}

	// Articles without an embedding still get one edge into their root
	// concept's cluster so they do not float free.
	embeddedSet := make(map[string]struct{}, len(embedded))
	for _, id := range embedded {
		embeddedSet[id] = struct{}{}
	}
	rootToArticle := make(map[string]string)
	for _, id := range articleOrder {
		if norms := articleConcepts[id]; len(norms) > 0 {
			if _, ok := rootToArticle[norms[0]]; !ok {
				rootToArticle[norms[0]] = id
			}
		}
	}
	for _, id := range articleOrder {
		if _, ok := embeddedSet[id]; ok {
			continue
		}
		norms := articleConcepts[id]
		if len(norms) == 0 {
			continue
		}
		if other, ok := rootToArticle[norms[0]]; ok && other != id {
			addEdge(articleNodePrefix+id, articleNodePrefix+other, bridgeEdgeWeight)
		}
	}

	if edges == nil {
		edges = []Edge{}
	}

	return &Response{
		Nodes: nodes,
		Edges: edges,
		Meta: Meta{
			TotalArticles:       totalArticles,
			TotalUniqueConcepts: len(selected),
			ReturnedNodes:       len(nodes),
			ReturnedEdges:       len(edges),
			MaxNodes:            maxNodes,
		},
	}, nil
}
