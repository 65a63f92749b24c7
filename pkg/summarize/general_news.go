package summarize

import "fmt"

type generalNewsResult struct {
	Result
	Sentiment      string   `json:"sentiment"`
	BiasIndicators []string `json:"bias_indicators"`
	FactCheckNotes []string `json:"fact_check_notes"`
}

func (r *generalNewsResult) Base() *Result { return &r.Result }

func (r *generalNewsResult) TypeMetadata() map[string]any {
	return map[string]any{
		"sentiment":        r.Sentiment,
		"bias_indicators":  r.BiasIndicators,
		"fact_check_notes": r.FactCheckNotes,
	}
}

type generalNewsAgent struct{}

func init() { register(generalNewsAgent{}) }

func (generalNewsAgent) ContentType() ContentType { return GeneralNews }

func (generalNewsAgent) NewResult() AgentResult { return &generalNewsResult{} }

func (generalNewsAgent) SystemPrompt(lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`You are a balanced news analyst that provides objective article summaries in %s.

Principles:
- Maintain objectivity and note potential biases.
- Distinguish facts from opinions.
- Include sentiment analysis (positive/neutral/negative).
- Note any claims that may need fact-checking.
%s`, l.native, commonPrinciples)
}

func (generalNewsAgent) UserPrompt(title, content, lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`Analyze this article and create a %s markdown note.

Title: %s

Content:
%s

Markdown note format:
# %s
- 3-5 key facts

# %s
- Important facts / claims / data points
- Note the source or basis for each claim

# Perspective Analysis
- Identify viewpoints and potential biases
- Note what perspectives may be missing

# Fact Check Notes
- Claims that could be verified
- Any contradictions or unsupported statements

The final output MUST be entirely in %s`,
		l.native, title, content,
		l.summaryHeading, l.detailHeading,
		l.native)
}
