package concept

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"lowercases", "React", "react"},
		{"alias react.js", "React.js", "react"},
		{"alias reactjs", "ReactJS", "react"},
		{"alias korean react", "리액트", "react"},
		{"strips parentheses", "Go (programming language)", "go"},
		{"strips brackets", "Rust [2024 edition]", "rust"},
		{"strips quotes", `"GraphQL"`, "graphql"},
		{"drops tutorial token", "TypeScript Tutorial", "typescript"},
		{"drops how to phrase", "How to Docker", "docker"},
		{"drops korean suffix", "파이썬 배우기", "python"},
		{"collapses whitespace", "  machine   learning  ", "machine learning"},
		{"alias after token removal", "Spring Boot Guide", "springboot"},
		{"kubernetes shorthand", "K8s", "kubernetes"},
		{"only stop tokens", "Tutorial Guide", ""},
		{"empty input", "", ""},
		{"nfkc fullwidth", "Ｒｅａｃｔ", "react"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.label)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.label, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"React.js", "TypeScript Tutorial", "파이썬 배우기", "Spring Boot",
		"kubernetes", "machine learning",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCleanLabel(t *testing.T) {
	got := CleanLabel("  Type   Script \tTutorial ")
	want := "Type Script Tutorial"
	if got != want {
		t.Fatalf("CleanLabel = %q, want %q", got, want)
	}
}
