package summarize

import "fmt"

type officialDocsResult struct {
	Result
	APIHighlights []string `json:"api_highlights"`
	VersionInfo   string   `json:"version_info"`
	Prerequisites []string `json:"prerequisites"`
	RelatedTopics []string `json:"related_topics"`
}

func (r *officialDocsResult) Base() *Result { return &r.Result }

func (r *officialDocsResult) TypeMetadata() map[string]any {
	return map[string]any{
		"api_highlights": r.APIHighlights,
		"version_info":   r.VersionInfo,
		"prerequisites":  r.Prerequisites,
		"related_topics": r.RelatedTopics,
	}
}

type officialDocsAgent struct{}

func init() { register(officialDocsAgent{}) }

func (officialDocsAgent) ContentType() ContentType { return OfficialDocs }

func (officialDocsAgent) NewResult() AgentResult { return &officialDocsResult{} }

func (officialDocsAgent) SystemPrompt(lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`You are a technical writer that condenses official documentation into practical reference notes in %s.

Principles:
- Preserve exact API names, signatures and version constraints.
- Highlight prerequisites and pitfalls the documentation warns about.
- Keep code samples minimal, with a language identifier on each block.
%s`, l.native, commonPrinciples)
}

func (officialDocsAgent) UserPrompt(title, content, lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`Analyze this documentation page and create a %s markdown note.

Title: %s

Content:
%s

Markdown note format:
# %s
- 3-5 key points

# %s
- Core APIs / options / behaviors with exact names

# %s
- Minimal usage examples from the page, shortened

# Prerequisites & Notes
- Required versions, setup steps, known pitfalls

The final output MUST be entirely in %s`,
		l.native, title, content,
		l.summaryHeading, l.detailHeading, l.codeHeading,
		l.native)
}
