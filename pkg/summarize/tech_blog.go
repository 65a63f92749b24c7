package summarize

import "fmt"

type techBlogResult struct {
	Result
	TechStack       []string `json:"tech_stack"`
	DifficultyLevel string   `json:"difficulty_level"`
}

func (r *techBlogResult) Base() *Result { return &r.Result }

func (r *techBlogResult) TypeMetadata() map[string]any {
	return map[string]any{
		"tech_stack":       r.TechStack,
		"difficulty_level": r.DifficultyLevel,
	}
}

type techBlogAgent struct{}

func init() { register(techBlogAgent{}) }

func (techBlogAgent) ContentType() ContentType { return TechBlog }

func (techBlogAgent) NewResult() AgentResult { return &techBlogResult{} }

func (techBlogAgent) SystemPrompt(lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`You are a senior tech writer that distills complex technical articles into actionable developer notes in %s.

Principles:
- If the article contains code, include only the minimal code necessary to understand the key ideas.
- Do NOT copy entire code blocks. Include only parts that reveal the core idea, keep them short.
- Add a language identifier to code blocks (e.g. `+"```ts, ```python"+`).
- Identify the tech stack and difficulty level of the article.
%s`, l.native, commonPrinciples)
}

func (techBlogAgent) UserPrompt(title, content, lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`Analyze this tech blog article and create a %s markdown note.

Title: %s

Content:
%s

Markdown note format:
# %s
- 3-5 key points

# %s
- Important concepts / definitions / decisions / trade-offs

# %s
- 1-3 short code blocks that reveal the core idea, each with a one-line caption
- Omit this section when the article has no code

# %s
- 2-5 actions to take (checkboxes where possible)

The final output MUST be entirely in %s`,
		l.native, title, content,
		l.summaryHeading, l.detailHeading, l.codeHeading, l.actionHeading,
		l.native)
}
