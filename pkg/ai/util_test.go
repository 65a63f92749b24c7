package ai

import (
	"testing"
)

func TestUnmarshalFlexible(t *testing.T) {
	type analysis struct {
		Summary  string   `json:"summary"`
		Concepts []string `json:"concepts,omitempty"`
	}

	tests := []struct {
		name  string
		input string
		want  analysis
	}{
		{
			name:  "valid json object",
			input: `{"summary":"short"}`,
			want:  analysis{Summary: "short"},
		},
		{
			name:  "unquoted key and single quotes",
			input: `{summary: 'short'}`,
			want:  analysis{Summary: "short"},
		},
		{
			name:  "trailing comma",
			input: `{"summary":"short",}`,
			want:  analysis{Summary: "short"},
		},
		{
			name:  "missing endbracket",
			input: `{"summary":"short`,
			want:  analysis{Summary: "short"},
		},
		{
			name:  "stringified invalid json object",
			input: `"{summary: 'short'}"`,
			want:  analysis{Summary: "short"},
		},
		{
			name:  "duplicate leading brace",
			input: "{\n{\n  \"summary\": \"short\"\n}\n",
			want:  analysis{Summary: "short"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got analysis
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got.Summary != tc.want.Summary {
				t.Fatalf("UnmarshalFlexible() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTruncateTokens(t *testing.T) {
	text := "one two three four five six seven eight nine ten"

	short, err := TruncateTokens(text, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(short) >= len(text) {
		t.Fatalf("expected truncation, got %q", short)
	}

	full, err := TruncateTokens(text, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if full != text {
		t.Fatalf("short input must pass through, got %q", full)
	}
}
