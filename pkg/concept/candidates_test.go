package concept

import (
	"reflect"
	"testing"
)

func TestResolveCandidates(t *testing.T) {
	tests := []struct {
		name          string
		rootHint      string
		concepts      []string
		existingNorms []string
		want          []Candidate
		wantOK        bool
	}{
		{
			name:     "root hint comes first",
			rootHint: "React",
			concepts: []string{"TypeScript", "JavaScript"},
			want: []Candidate{
				{Label: "react", Norm: "react"},
				{Label: "typescript", Norm: "typescript"},
			},
			wantOK: true,
		},
		{
			name:     "fuzzy folds onto existing norm",
			rootHint: "Type Script Tutorial",
			concepts: []string{"React.js"},
			existingNorms: []string{
				"typescript", "react",
			},
			want: []Candidate{
				{Label: "typescript", Norm: "typescript"},
				{Label: "react", Norm: "react"},
			},
			wantOK: true,
		},
		{
			name:     "duplicate final norms collapse",
			rootHint: "React",
			concepts: []string{"React.js", "ReactJS", "Vue"},
			want: []Candidate{
				{Label: "react", Norm: "react"},
				{Label: "vue", Norm: "vue"},
			},
			wantOK: true,
		},
		{
			name:     "norm accepted mid call joins the pool",
			rootHint: "typescript",
			concepts: []string{"type script"},
			want: []Candidate{
				{Label: "typescript", Norm: "typescript"},
			},
			wantOK: true,
		},
		{
			name:     "nothing survives normalization",
			rootHint: "Tutorial",
			concepts: []string{"Guide", "  "},
			wantOK:   false,
		},
		{
			name:     "no root hint uses first concept",
			concepts: []string{"Docker", "Kubernetes"},
			want: []Candidate{
				{Label: "docker", Norm: "docker"},
				{Label: "kubernetes", Norm: "kubernetes"},
			},
			wantOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveCandidates(
				tc.rootHint, tc.concepts, tc.existingNorms,
				DefaultMaxCandidates, DefaultThreshold,
			)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("candidates = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveCandidatesCap(t *testing.T) {
	got, ok := ResolveCandidates(
		"Go", []string{"Rust", "Zig", "C"}, nil, 2, DefaultThreshold,
	)
	if !ok {
		t.Fatal("expected ok")
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}
