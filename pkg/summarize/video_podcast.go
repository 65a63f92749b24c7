package summarize

import "fmt"

type videoPodcastResult struct {
	Result
	Timestamps           []string `json:"timestamps"`
	Speakers             []string `json:"speakers"`
	TranscriptHighlights []string `json:"transcript_highlights"`
}

func (r *videoPodcastResult) Base() *Result { return &r.Result }

func (r *videoPodcastResult) TypeMetadata() map[string]any {
	return map[string]any{
		"timestamps":            r.Timestamps,
		"speakers":              r.Speakers,
		"transcript_highlights": r.TranscriptHighlights,
	}
}

type videoPodcastAgent struct{}

func init() { register(videoPodcastAgent{}) }

func (videoPodcastAgent) ContentType() ContentType { return VideoPodcast }

func (videoPodcastAgent) NewResult() AgentResult { return &videoPodcastResult{} }

func (videoPodcastAgent) SystemPrompt(lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`You are an editor that turns video and podcast transcripts into structured notes in %s.

Principles:
- Work from the transcript text only; never invent timestamps or speakers.
- Attribute statements to speakers when the transcript names them.
- Quote short transcript highlights rather than paraphrasing everything.
%s`, l.native, commonPrinciples)
}

func (videoPodcastAgent) UserPrompt(title, content, lang string) string {
	l := langFor(lang)
	return fmt.Sprintf(`Analyze this transcript and create a %s markdown note.

Title: %s

Content:
%s

Markdown note format:
# %s
- 3-5 key takeaways

# %s
- Main topics in the order discussed

# Highlights
- Short direct quotes worth keeping, with timestamps when present

The final output MUST be entirely in %s`,
		l.native, title, content,
		l.summaryHeading, l.detailHeading,
		l.native)
}
