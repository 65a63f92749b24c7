package summarize

import "fmt"

type academicPaperResult struct {
	Result
	Abstract    string   `json:"abstract"`
	Methodology string   `json:"methodology"`
	Findings    []string `json:"findings"`
	Limitations []string `json:"limitations"`
}

func (r *academicPaperResult) Base() *Result { return &r.Result }

func (r *academicPaperResult) TypeMetadata() map[string]any {
	return map[string]any{
		"abstract":    r.Abstract,
		"methodology": r.Methodology,
		"findings":    r.Findings,
		"limitations": r.Limitations,
	}
}

type academicPaperAgent struct{}

func init() { register(academicPaperAgent{}) }

func (academicPaperAgent) ContentType() ContentType { return AcademicPaper }

func (academicPaperAgent) NewResult() AgentResult { return &academicPaperResult{} }

func (academicPaperAgent) SystemPrompt(lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`You are a research analyst that summarizes academic papers into accessible notes in %s.

Principles:
- Separate the paper's claims from its evidence.
- State the methodology and its limitations explicitly.
- Keep formal terminology, but explain it on first use.
%s`, l.native, commonPrinciples)
}

func (academicPaperAgent) UserPrompt(title, content, lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`Analyze this academic paper and create a %s markdown note.

Title: %s

Content:
%s

Markdown note format:
# %s
- 3-5 key findings

# %s
- Research question, methodology, datasets, evaluation

# Findings
- Main results with the evidence behind each

# Limitations
- Stated or apparent limitations of the work

The final output MUST be entirely in %s`,
		l.native, title, content,
		l.summaryHeading, l.detailHeading,
		l.native)
}
