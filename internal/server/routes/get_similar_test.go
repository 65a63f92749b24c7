package routes

import (
	"reflect"
	"testing"
)

func TestSharedConcepts(t *testing.T) {
	tests := []struct {
		name     string
		target   []string
		neighbor []string
		want     []string
	}{
		{
			name:     "overlap keeps target order",
			target:   []string{"typescript", "generics"},
			neighbor: []string{"generics", "typescript", "react"},
			want:     []string{"typescript", "generics"},
		},
		{
			name:     "no overlap",
			target:   []string{"typescript"},
			neighbor: []string{"rust"},
			want:     []string{},
		},
		{
			name:     "target without summary",
			target:   nil,
			neighbor: []string{"rust"},
			want:     []string{},
		},
		{
			name:     "neighbor without summary",
			target:   []string{"rust"},
			neighbor: nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sharedConcepts(tt.target, tt.neighbor)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("sharedConcepts(%v, %v) = %v, want %v", tt.target, tt.neighbor, got, tt.want)
			}
		})
	}
}
