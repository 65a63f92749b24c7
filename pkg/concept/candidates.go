package concept

// DefaultMaxCandidates caps how many concepts a single article may
// contribute to the graph.
const DefaultMaxCandidates = 2

// Candidate is one resolved concept: the display label and the canonical
// norm it resolved to. After resolution the label is always the final
// norm, so merged spelling variants display identically.
type Candidate struct {
	Label string
	Norm  string
}

// ResolveCandidates turns the root concept hint plus the raw concept list
// of one article into at most maxCandidates resolved candidates. The root
// hint is considered first, so the first returned candidate is the
// article's root concept. existingNorms seeds the pool of known norms;
// norms accepted during this call join the pool immediately, so later
// labels in the same article can fold onto them. Duplicate final norms
// within the call are dropped. ok is false when nothing survived
// normalization.
func ResolveCandidates(
	rootHint string,
	concepts []string,
	existingNorms []string,
	maxCandidates int,
	threshold float64,
) (candidates []Candidate, ok bool) {
	var labels []string
	if root := CleanLabel(rootHint); root != "" {
		labels = append(labels, root)
	}
	for _, raw := range concepts {
		if label := CleanLabel(raw); label != "" {
			labels = append(labels, label)
		}
	}

	known := make([]string, 0, len(existingNorms))
	for _, n := range existingNorms {
		if n != "" {
			known = append(known, n)
		}
	}

	seen := make(map[string]struct{})
	for _, label := range labels {
		rawNorm := Normalize(label)
		if rawNorm == "" {
			continue
		}

		finalNorm := Resolve(rawNorm, known, threshold)
		if _, dup := seen[finalNorm]; dup {
			continue
		}
		seen[finalNorm] = struct{}{}

		if !containsNorm(known, finalNorm) {
			known = append(known, finalNorm)
		}

		candidates = append(candidates, Candidate{Label: finalNorm, Norm: finalNorm})
		if len(candidates) >= maxCandidates {
			break
		}
	}

	return candidates, len(candidates) > 0
}

func containsNorm(norms []string, n string) bool {
	for _, v := range norms {
		if v == n {
			return true
		}
	}
	return false
}
