// Package concept normalizes free-form concept labels produced by AI
// summarization and resolves near-duplicate spellings to shared canonical
// forms, so that "React.js", "ReactJS" and "리액트" all land on one graph node.
package concept

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	parenRe = regexp.MustCompile(`\([^)]*\)`)
	brackRe = regexp.MustCompile(`\[[^]]*\]`)
	quoteRe = regexp.MustCompile(`["']`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// stopTokens are filler words that carry no identity. They are dropped
// token-wise after case folding; "how to" is removed as a phrase before
// tokenization since it spans two tokens.
var stopTokens = map[string]struct{}{
	"tutorial": {},
	"guide":    {},
	"basics":   {},
	"learn":    {},
	"배우기":      {},
	"정리":       {},
	"입문":       {},
	"기초":       {},
}

// aliases maps well-known spelling variants to their canonical norm.
// Lookup happens after folding and stop-token removal, so keys are
// already-normalized strings.
var aliases = map[string]string{
	"타입스크립트":          "typescript",
	"typescript 배우기": "typescript",
	"자바스크립트":          "javascript",
	"javascript 기초":  "javascript",
	"파이썬":             "python",
	"리액트":             "react",
	"react.js":        "react",
	"reactjs":         "react",
	"넥스트js":           "nextjs",
	"next.js":         "nextjs",
	"네스트js":           "nestjs",
	"nest.js":         "nestjs",
	"노드js":            "nodejs",
	"node.js":         "nodejs",
	"장고":              "django",
	"스프링부트":           "springboot",
	"spring boot":     "springboot",
	"도커":              "docker",
	"쿠버네티스":           "kubernetes",
	"k8s":             "kubernetes",
	"아마존웹서비스":         "aws",
	"대규모언어모델":         "llm",
}

var fold = cases.Fold()

// Normalize reduces a raw concept label to its canonical form. It applies
// Unicode NFKC normalization, strips parenthesized and bracketed segments
// and quote characters, case-folds, removes stop tokens, collapses
// whitespace and finally consults the alias table. The empty string means
// the label carried no usable identity.
func Normalize(label string) string {
	s := norm.NFKC.String(label)
	s = parenRe.ReplaceAllString(s, "")
	s = brackRe.ReplaceAllString(s, "")
	s = quoteRe.ReplaceAllString(s, "")
	s = fold.String(s)
	// "how to" spans two tokens, strip it before splitting.
	s = strings.ReplaceAll(s, "how to", "")

	tokens := strings.Fields(s)
	kept := tokens[:0]
	for _, t := range tokens {
		if _, drop := stopTokens[t]; drop {
			continue
		}
		kept = append(kept, t)
	}
	s = strings.Join(kept, " ")
	if s == "" {
		return ""
	}
	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	return s
}

// CleanLabel collapses runs of whitespace and trims a display label
// without changing its case or content otherwise.
func CleanLabel(label string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(label, " "))
}
