// Package summarize turns article text into structured summaries through
// content-type-aware agents. The content type is classified from the URL
// alone, so no model call is spent on routing.
package summarize

import (
	"net/url"
	"strings"
)

// ContentType routes an article to its summarization agent.
type ContentType string

const (
	TechBlog      ContentType = "tech_blog"
	AcademicPaper ContentType = "academic_paper"
	GeneralNews   ContentType = "general_news"
	GitHubRepo    ContentType = "github_repo"
	OfficialDocs  ContentType = "official_docs"
	VideoPodcast  ContentType = "video_podcast"
)

// ContentTypes lists every known content type.
var ContentTypes = []ContentType{
	TechBlog, AcademicPaper, GeneralNews, GitHubRepo, OfficialDocs, VideoPodcast,
}

// ValidContentType reports whether ct is a known content type.
func ValidContentType(ct ContentType) bool {
	for _, known := range ContentTypes {
		if ct == known {
			return true
		}
	}
	return false
}

type domainRule struct {
	domains     []string
	contentType ContentType
}

var domainRules = []domainRule{
	{[]string{"github.com", "gitlab.com", "bitbucket.org"}, GitHubRepo},
	{[]string{
		"arxiv.org",
		"scholar.google.com",
		"semanticscholar.org",
		"pubmed.ncbi.nlm.nih.gov",
		"ieee.org",
		"acm.org",
		"researchgate.net",
		"ssrn.com",
	}, AcademicPaper},
	{[]string{
		"youtube.com",
		"youtu.be",
		"podcasts.apple.com",
		"spotify.com",
		"soundcloud.com",
		"vimeo.com",
	}, VideoPodcast},
	{[]string{
		"medium.com",
		"dev.to",
		"velog.io",
		"hashnode.dev",
		"tistory.com",
		"brunch.co.kr",
		"zenn.dev",
		"qiita.com",
		"hackernoon.com",
		"freecodecamp.org",
		"css-tricks.com",
		"smashingmagazine.com",
		"infoq.com",
		"dzone.com",
		"techcrunch.com",
	}, TechBlog},
	{[]string{
		"docs.python.org",
		"docs.rs",
		"pkg.go.dev",
		"docs.microsoft.com",
		"learn.microsoft.com",
		"developer.apple.com",
		"cloud.google.com",
		"developers.google.com",
		"developer.mozilla.org",
		"react.dev",
		"nextjs.org",
		"vuejs.org",
		"angular.io",
		"angular.dev",
		"svelte.dev",
		"kit.svelte.dev",
		"solidjs.com",
		"preactjs.com",
		"astro.build",
		"reactjs.org",
		"legacy.reactjs.org",
		"typescriptlang.org",
		"nodejs.org",
		"deno.land",
		"deno.com",
		"bun.sh",
		"tailwindcss.com",
		"getbootstrap.com",
		"fastapi.tiangolo.com",
		"docs.djangoproject.com",
		"flask.palletsprojects.com",
		"spring.io",
		"rubyonrails.org",
		"redis.io",
		"postgresql.org",
		"mongodb.com",
		"docs.aws.amazon.com",
		"vercel.com",
		"docs.docker.com",
		"kubernetes.io",
		"graphql.org",
		"docs.github.com",
		"platform.openai.com",
		"docs.anthropic.com",
	}, OfficialDocs},
}

var docsPathHints = []string{
	"/docs/",
	"/documentation/",
	"/reference/",
	"/api/",
	"/guide/",
	"/learn/",
	"/tutorial/",
}

// ClassifyURL derives a content type from the URL: exact domain rules
// first, then path heuristics, then general news.
func ClassifyURL(rawURL string) ContentType {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return GeneralNews
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	path := strings.ToLower(parsed.Path)

	for _, rule := range domainRules {
		for _, d := range rule.domains {
			if host == d || strings.HasSuffix(host, "."+d) {
				return rule.contentType
			}
		}
	}

	if strings.HasPrefix(host, "docs.") {
		return OfficialDocs
	}
	for _, hint := range docsPathHints {
		if strings.Contains(path, hint) {
			return OfficialDocs
		}
	}
	if strings.HasPrefix(host, "blog.") ||
		strings.Contains(path, "/blog/") ||
		strings.Contains(path, "/posts/") {
		return TechBlog
	}

	return GeneralNews
}
