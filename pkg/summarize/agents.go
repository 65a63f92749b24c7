package summarize

import (
	"fmt"
)

// Result holds the fields every agent must produce.
type Result struct {
	Summary            string   `json:"summary"`
	Concepts           []string `json:"concepts"`
	RootConcept        string   `json:"root_concept"`
	KeyPoints          []string `json:"key_points"`
	Language           string   `json:"language"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
	MarkdownNote       string   `json:"markdown_note"`
}

// AgentResult is implemented by each agent's structured output type.
// Base exposes the shared fields; TypeMetadata returns the agent-specific
// extras that are persisted alongside them.
type AgentResult interface {
	Base() *Result
	TypeMetadata() map[string]any
}

// Agent is the strategy interface for content-type-specific summarization.
type Agent interface {
	ContentType() ContentType
	SystemPrompt(lang string) string
	UserPrompt(title, content, lang string) string
	// NewResult returns a fresh output value for structured generation.
	NewResult() AgentResult
}

var registry = map[ContentType]Agent{}

func register(a Agent) {
	registry[a.ContentType()] = a
}

// AgentFor returns the agent for a content type, falling back to the
// general news agent for unknown types.
func AgentFor(ct ContentType) Agent {
	if a, ok := registry[ct]; ok {
		return a
	}
	return registry[GeneralNews]
}

type langInfo struct {
	name           string
	native         string
	summaryHeading string
	detailHeading  string
	codeHeading    string
	actionHeading  string
}

var languages = map[string]langInfo{
	"ko": {
		name:           "Korean",
		native:         "한국어",
		summaryHeading: "핵심 요약",
		detailHeading:  "상세 내용",
		codeHeading:    "코드 스니펫 (핵심만)",
		actionHeading:  "인사이트 / 할 일",
	},
	"en": {
		name:           "English",
		native:         "English",
		summaryHeading: "Summary",
		detailHeading:  "Details",
		codeHeading:    "Code Snippets",
		actionHeading:  "Insights / Action Items",
	},
	"ja": {
		name:           "Japanese",
		native:         "日本語",
		summaryHeading: "要点まとめ",
		detailHeading:  "詳細",
		codeHeading:    "コードスニペット",
		actionHeading:  "インサイト / TODO",
	},
}

// DefaultLanguage is used when neither the article nor the user names one.
const DefaultLanguage = "ko"

func langFor(code string) langInfo {
	if l, ok := languages[code]; ok {
		return l
	}
	return languages[DefaultLanguage]
}

// jsonFieldsPrompt lists the base fields every agent's JSON output carries.
func jsonFieldsPrompt(lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`Return a JSON object with these fields:
- summary: 2-4 sentences in %s
- concepts: 3-7 short keywords
- root_concept: one representative concept from concepts
- key_points: 3-5 key points (one sentence each)
- language: the article's language (ISO 639-1 code, e.g. "en", "ko", "ja")
- reading_time_minutes: estimated reading time (~200 words/min)
- markdown_note: a %s markdown note following the template`, l.name, l.name)
}

// commonPrinciples are appended to every system prompt.
const commonPrinciples = `- Write based on facts only; if evidence is unclear, note "No basis in source."
- Prefer actionable formats; avoid unnecessary verbosity.
- Return ONLY the JSON object requested (no preamble / commentary).`
