package summarize

import "fmt"

type githubRepoResult struct {
	Result
	TechStack            []string `json:"tech_stack"`
	ArchitectureOverview string   `json:"architecture_overview"`
	GettingStarted       string   `json:"getting_started"`
	UseCases             []string `json:"use_cases"`
}

func (r *githubRepoResult) Base() *Result { return &r.Result }

func (r *githubRepoResult) TypeMetadata() map[string]any {
	return map[string]any{
		"tech_stack":            r.TechStack,
		"architecture_overview": r.ArchitectureOverview,
		"getting_started":       r.GettingStarted,
		"use_cases":             r.UseCases,
	}
}

type githubRepoAgent struct{}

func init() { register(githubRepoAgent{}) }

func (githubRepoAgent) ContentType() ContentType { return GitHubRepo }

func (githubRepoAgent) NewResult() AgentResult { return &githubRepoResult{} }

func (githubRepoAgent) SystemPrompt(lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`You are a software engineer that evaluates open source repositories and writes adoption notes in %s.

Principles:
- Identify what the project does, its tech stack and its architecture.
- Summarize how to get started without copying the full README.
- Name realistic use cases and alternatives where the source mentions them.
%s`, l.native, commonPrinciples)
}

func (githubRepoAgent) UserPrompt(title, content, lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`Analyze this repository page and create a %s markdown note.

Title: %s

Content:
%s

Markdown note format:
# %s
- 3-5 key points about what the project does

# %s
- Architecture, tech stack, notable design decisions

# Getting Started
- Minimal steps to try the project

# Use Cases
- Situations where this project is a good fit

The final output MUST be entirely in %s`,
		l.native, title, content,
		l.summaryHeading, l.detailHeading,
		l.native)
}
