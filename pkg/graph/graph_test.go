package graph

import (
	"context"
	"fmt"
	"testing"

	"github.com/nodhq/nod/backend/pkg/store"
)

type fakeReader struct {
	total     int
	articles  []store.ArticleConcepts
	embedded  []string
	neighbors []store.Neighbor
}

func (f *fakeReader) CountAnalyzedArticles(ctx context.Context, userID string) (int, error) {
	if f.total != 0 {
		return f.total, nil
	}
	return len(f.articles), nil
}

func (f *fakeReader) ListAnalyzedArticles(ctx context.Context, userID string) ([]store.ArticleConcepts, error) {
	return f.articles, nil
}

func (f *fakeReader) ListRecentAnalyzedArticles(ctx context.Context, userID string, limit int) ([]store.ArticleConcepts, error) {
	if limit < len(f.articles) {
		return f.articles[:limit], nil
	}
	return f.articles, nil
}

func (f *fakeReader) EmbeddedArticleIDs(ctx context.Context, ids []string) ([]string, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []string
	for _, id := range f.embedded {
		if _, ok := want[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeReader) NearestNeighbors(ctx context.Context, ids []string, k int) ([]store.Neighbor, error) {
	return f.neighbors, nil
}

func nodeByID(t *testing.T, resp *Response, id string) Node {
	t.Helper()
	for _, n := range resp.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %s not found", id)
	return Node{}
}

func hasEdge(resp *Response, a, b string) (Edge, bool) {
	if b < a {
		a, b = b, a
	}
	for _, e := range resp.Edges {
		if e.Source == a && e.Target == b {
			return e, true
		}
	}
	return Edge{}, false
}

func TestBuildFocused(t *testing.T) {
	reader := &fakeReader{articles: []store.ArticleConcepts{
		{ID: "a1", Title: "Intro to React", RootLabel: "React", RootNorm: "react"},
		{ID: "a2", Title: "React Hooks", RootLabel: "React", RootNorm: "react"},
		{ID: "a3", Title: "Go Basics", RootLabel: "Go", RootNorm: "go"},
	}}
	b := NewBuilder(reader)

	resp, err := b.Build(context.Background(), "u1", "React.js", "", 1000)
	if err != nil {
		t.Fatal(err)
	}

	if len(resp.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(resp.Nodes))
	}
	root := nodeByID(t, resp, "concept:react")
	if root.Kind != NodeKindConcept || root.Value != 2 || root.Label != "React" {
		t.Fatalf("unexpected root node: %+v", root)
	}
	if len(resp.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(resp.Edges))
	}
	for _, e := range resp.Edges {
		if e.Source != "concept:react" || e.Weight != 1 {
			t.Fatalf("unexpected edge: %+v", e)
		}
	}
	if resp.Meta.TotalArticles != 2 || resp.Meta.TotalUniqueConcepts != 1 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
}

func TestBuildFocusedStripsNodePrefix(t *testing.T) {
	reader := &fakeReader{articles: []store.ArticleConcepts{
		{ID: "a1", Title: "Intro to React", RootNorm: "react"},
	}}
	b := NewBuilder(reader)

	resp, err := b.Build(context.Background(), "u1", "concept:react", "", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(resp.Nodes))
	}
}

func TestBuildFocusedEmpty(t *testing.T) {
	reader := &fakeReader{articles: []store.ArticleConcepts{
		{ID: "a1", Title: "Intro to React", RootNorm: "react"},
	}}
	b := NewBuilder(reader)

	for _, root := range []string{"Tutorial", "unknown concept"} {
		resp, err := b.Build(context.Background(), "u1", root, "", 1000)
		if err != nil {
			t.Fatal(err)
		}
		if len(resp.Nodes) != 0 || len(resp.Edges) != 0 {
			t.Fatalf("root %q: expected empty graph, got %+v", root, resp)
		}
		if resp.Meta.TotalArticles != 0 {
			t.Fatalf("root %q: unexpected meta: %+v", root, resp.Meta)
		}
	}
}

func TestBuildFocusedRootFallback(t *testing.T) {
	// No stored norm or label, root comes from the first usable concept.
	reader := &fakeReader{articles: []store.ArticleConcepts{
		{ID: "a1", Title: "Compose Intro", Concepts: []string{"  ", "Docker"}},
	}}
	b := NewBuilder(reader)

	resp, err := b.Build(context.Background(), "u1", "docker", "", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(resp.Nodes))
	}
	root := nodeByID(t, resp, "concept:docker")
	if root.Label != "Docker" {
		t.Fatalf("label = %q, want %q", root.Label, "Docker")
	}
}

func TestBuildOverview(t *testing.T) {
	reader := &fakeReader{articles: []store.ArticleConcepts{
		{ID: "a1", Title: "t1", RootLabel: "React", RootNorm: "react"},
		{ID: "a2", Title: "t2", RootLabel: "React", RootNorm: "react"},
		{ID: "a3", Title: "t3", RootLabel: "Go", RootNorm: "go"},
		{ID: "a4", Title: "t4", Concepts: []string{"Tutorial"}},
	}}
	b := NewBuilder(reader)

	resp, err := b.Build(context.Background(), "u1", "", "", 1000)
	if err != nil {
		t.Fatal(err)
	}

	if len(resp.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(resp.Nodes))
	}
	if resp.Nodes[0].ID != "concept:react" || resp.Nodes[0].Value != 2 {
		t.Fatalf("unexpected first node: %+v", resp.Nodes[0])
	}
	if len(resp.Edges) != 0 {
		t.Fatalf("edges = %d, want 0", len(resp.Edges))
	}
	if resp.Meta.TotalArticles != 3 || resp.Meta.TotalUniqueConcepts != 2 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
}

func TestBuildGlobal(t *testing.T) {
	reader := &fakeReader{
		total: 42,
		articles: []store.ArticleConcepts{
			{ID: "a1", Title: "React Intro", RootNorm: "react", Concepts: []string{"React", "TypeScript"}},
			{ID: "a2", Title: "Type Script Deep Dive", RootNorm: "type script", Concepts: []string{"Type Script"}},
			{ID: "a3", Title: "Offline Notes", RootNorm: "react", Concepts: []string{"React"}},
		},
		embedded: []string{"a1", "a2"},
		neighbors: []store.Neighbor{
			{SourceID: "a1", NeighborID: "a2", Similarity: 0.87},
			{SourceID: "a2", NeighborID: "a1", Similarity: 0.87},
			{SourceID: "a1", NeighborID: "a1", Similarity: 1.0},
		},
	}
	b := NewBuilder(reader)

	resp, err := b.Build(context.Background(), "u1", "", "global", 500)
	if err != nil {
		t.Fatal(err)
	}

	// "type script" folds onto "typescript" during re-clustering.
	ts := nodeByID(t, resp, "concept:typescript")
	if ts.Value != 2 {
		t.Fatalf("typescript value = %d, want 2", ts.Value)
	}

	if e, ok := hasEdge(resp, "article:a1", "concept:react"); !ok || e.Weight != conceptEdgeWeight {
		t.Fatalf("missing concept edge, got %+v ok=%v", e, ok)
	}

	// Reverse neighbor pair and self pair collapse to one edge.
	e, ok := hasEdge(resp, "article:a1", "article:a2")
	if !ok || e.Weight != 87 {
		t.Fatalf("similarity edge = %+v ok=%v, want weight 87", e, ok)
	}

	// a3 has no embedding and bridges to the first react article.
	if e, ok := hasEdge(resp, "article:a3", "article:a1"); !ok || e.Weight != bridgeEdgeWeight {
		t.Fatalf("bridge edge = %+v ok=%v", e, ok)
	}

	if resp.Meta.TotalArticles != 42 {
		t.Fatalf("total articles = %d, want 42", resp.Meta.TotalArticles)
	}
	if resp.Meta.MaxNodes != 500 {
		t.Fatalf("max nodes = %d, want 500", resp.Meta.MaxNodes)
	}
}

func TestBuildGlobalClampsMaxNodes(t *testing.T) {
	reader := &fakeReader{articles: nil}
	b := NewBuilder(reader)

	for _, tc := range []struct {
		in   int
		want int
	}{
		{10, 100},
		{5000, 1000},
		{400, 400},
	} {
		resp, err := b.Build(context.Background(), "u1", "", "global", tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Meta.MaxNodes != tc.want {
			t.Fatalf("maxNodes %d clamped to %d, want %d", tc.in, resp.Meta.MaxNodes, tc.want)
		}
	}
}

func TestBuildGlobalBudget(t *testing.T) {
	var articles []store.ArticleConcepts
	labels := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i := 0; i < 300; i++ {
		articles = append(articles, store.ArticleConcepts{
			ID:       fmt.Sprintf("a%03d", i),
			Title:    "article",
			RootNorm: labels[i%len(labels)],
			Concepts: []string{labels[(i+1)%len(labels)]},
		})
	}
	b := NewBuilder(&fakeReader{articles: articles})

	resp, err := b.Build(context.Background(), "u1", "", "global", 100)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Meta.ReturnedNodes > 100 {
		t.Fatalf("returned %d nodes, budget 100", resp.Meta.ReturnedNodes)
	}
	if resp.Meta.ReturnedNodes != len(resp.Nodes) {
		t.Fatalf("meta nodes %d != len(nodes) %d", resp.Meta.ReturnedNodes, len(resp.Nodes))
	}
}

func TestBuildGlobalEmpty(t *testing.T) {
	b := NewBuilder(&fakeReader{total: 7})

	resp, err := b.Build(context.Background(), "u1", "", "global", 200)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Nodes) != 0 || len(resp.Edges) != 0 {
		t.Fatalf("expected empty graph, got %+v", resp)
	}
	if resp.Meta.TotalArticles != 7 {
		t.Fatalf("total articles = %d, want 7", resp.Meta.TotalArticles)
	}
}
