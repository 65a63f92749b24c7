package concept

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "react", "react", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "react", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"spaced variant", "type script", "typescript", 20.0 / 21.0},
		{"single edit", "reakt", "react", 8.0 / 10.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Ratio([]rune(tc.a), []rune(tc.b))
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Ratio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		known     []string
		threshold float64
		want      string
	}{
		{
			name:      "no known norms",
			candidate: "react",
			known:     nil,
			threshold: DefaultThreshold,
			want:      "react",
		},
		{
			name:      "exact match fast path",
			candidate: "react",
			known:     []string{"vue", "react"},
			threshold: DefaultThreshold,
			want:      "react",
		},
		{
			name:      "folds near duplicate",
			candidate: "type script",
			known:     []string{"typescript"},
			threshold: DefaultThreshold,
			want:      "typescript",
		},
		{
			name:      "below threshold keeps candidate",
			candidate: "rust",
			known:     []string{"react"},
			threshold: DefaultThreshold,
			want:      "rust",
		},
		{
			name:      "threshold boundary is inclusive",
			candidate: "abcd",
			known:     []string{"abc"},
			threshold: 6.0 / 7.0,
			want:      "abc",
		},
		{
			name:      "tie keeps first encountered",
			candidate: "ab",
			known:     []string{"ax", "bx"},
			threshold: 0.5,
			want:      "ax",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.candidate, tc.known, tc.threshold)
			if got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.candidate, got, tc.want)
			}
		})
	}
}
