package graph

import (
	"sort"

	"github.com/nodhq/nod/backend/pkg/concept"
	"github.com/nodhq/nod/backend/pkg/store"
)

// labeledNorm pairs a display label with its canonical norm.
type labeledNorm struct {
	label string
	norm  string
}

// effectiveRoot determines the root concept of an article. The stored
// norm wins, then the stored label, then the first stored concept that
// still normalizes to something. ok is false when nothing usable exists.
func effectiveRoot(a store.ArticleConcepts) (labeledNorm, bool) {
	normalized := concept.Normalize(a.RootNorm)
	label := concept.CleanLabel(a.RootLabel)

	if normalized != "" {
		if label == "" {
			label = normalized
		}
		return labeledNorm{label: label, norm: normalized}, true
	}

	if label != "" {
		if n := concept.Normalize(label); n != "" {
			return labeledNorm{label: label, norm: n}, true
		}
	}

	for _, raw := range a.Concepts {
		fallbackLabel := concept.CleanLabel(raw)
		if fallbackLabel == "" {
			continue
		}
		if n := concept.Normalize(fallbackLabel); n != "" {
			return labeledNorm{label: fallbackLabel, norm: n}, true
		}
	}

	return labeledNorm{}, false
}

// extractConcepts lists up to max distinct concepts of an article, root
// first, each with the label it was stored under.
func extractConcepts(a store.ArticleConcepts, max int) []labeledNorm {
	var extracted []labeledNorm
	seen := make(map[string]struct{})

	if root, ok := effectiveRoot(a); ok {
		extracted = append(extracted, root)
		seen[root.norm] = struct{}{}
	}

	for _, raw := range a.Concepts {
		label := concept.CleanLabel(raw)
		if label == "" {
			continue
		}
		norm := concept.Normalize(label)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		extracted = append(extracted, labeledNorm{label: label, norm: norm})
		seen[norm] = struct{}{}
		if len(extracted) >= max {
			break
		}
	}

	return extracted
}

// labelCount tallies how often each display label was seen for a norm.
type labelCount map[string]int

// mostFrequent picks the label with the highest count, breaking ties by
// lexicographic order so the choice is stable.
func (lc labelCount) mostFrequent(fallback string) string {
	best := fallback
	bestCount := 0
	labels := make([]string, 0, len(lc))
	for label := range lc {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		if lc[label] > bestCount {
			best = label
			bestCount = lc[label]
		}
	}
	return best
}
