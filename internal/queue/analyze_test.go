package queue

import (
	"reflect"
	"testing"

	"github.com/nodhq/nod/backend/pkg/concept"
	"github.com/nodhq/nod/backend/pkg/summarize"
)

func TestSummaryForAnalysis(t *testing.T) {
	analysis := &summarize.Analysis{
		Result: summarize.Result{
			Summary:            "An introduction to generics.",
			Concepts:           []string{"TypeScript", "TS Generics"},
			RootConcept:        "TypeScript",
			KeyPoints:          []string{"type parameters"},
			Language:           "en",
			ReadingTimeMinutes: 4,
			MarkdownNote:       "# Notes",
		},
		ContentType:  summarize.TechBlog,
		TypeMetadata: map[string]any{"difficulty": "intermediate"},
	}

	tests := []struct {
		name          string
		candidates    []concept.Candidate
		wantConcepts  []string
		wantRootLabel string
		wantRootNorm  string
	}{
		{
			name: "stores resolved labels not raw llm output",
			candidates: []concept.Candidate{
				{Label: "typescript", Norm: "typescript"},
				{Label: "generics", Norm: "generics"},
			},
			wantConcepts:  []string{"typescript", "generics"},
			wantRootLabel: "typescript",
			wantRootNorm:  "typescript",
		},
		{
			name:          "no candidates leaves concepts and root empty",
			candidates:    nil,
			wantConcepts:  []string{},
			wantRootLabel: "",
			wantRootNorm:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := summaryForAnalysis(analysis, tt.candidates, "openai", "gpt-5")

			if !reflect.DeepEqual(summary.Concepts, tt.wantConcepts) {
				t.Fatalf("Concepts = %v, want %v", summary.Concepts, tt.wantConcepts)
			}
			if summary.RootLabel != tt.wantRootLabel {
				t.Fatalf("RootLabel = %q, want %q", summary.RootLabel, tt.wantRootLabel)
			}
			if summary.RootNorm != tt.wantRootNorm {
				t.Fatalf("RootNorm = %q, want %q", summary.RootNorm, tt.wantRootNorm)
			}
		})
	}
}

func TestSummaryForAnalysisCarriesAnalysisFields(t *testing.T) {
	analysis := &summarize.Analysis{
		Result: summarize.Result{
			Summary:            "A survey of retrieval augmentation.",
			Concepts:           []string{"RAG"},
			Language:           "ko",
			ReadingTimeMinutes: 7,
		},
		ContentType:  summarize.AcademicPaper,
		TypeMetadata: map[string]any{"venue": "arXiv"},
	}
	candidates, ok := concept.ResolveCandidates(
		"RAG", analysis.Concepts, nil,
		concept.DefaultMaxCandidates, concept.DefaultThreshold,
	)
	if !ok {
		t.Fatal("expected candidates")
	}

	summary := summaryForAnalysis(analysis, candidates, "ollama", "gemma3")

	if summary.Summary != analysis.Summary {
		t.Fatalf("Summary = %q, want %q", summary.Summary, analysis.Summary)
	}
	if summary.ContentType != string(summarize.AcademicPaper) {
		t.Fatalf("ContentType = %q, want %q", summary.ContentType, summarize.AcademicPaper)
	}
	if summary.TypeMetadata["venue"] != "arXiv" {
		t.Fatalf("TypeMetadata = %v, want venue arXiv", summary.TypeMetadata)
	}
	if summary.Provider != "ollama" || summary.Model != "gemma3" {
		t.Fatalf("provenance = %s/%s, want ollama/gemma3", summary.Provider, summary.Model)
	}
	if summary.RootNorm != "rag" {
		t.Fatalf("RootNorm = %q, want %q", summary.RootNorm, "rag")
	}
}
