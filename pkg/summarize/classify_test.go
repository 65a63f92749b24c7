package summarize

import "testing"

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want ContentType
	}{
		{"github", "https://github.com/golang/go", GitHubRepo},
		{"gitlab subdomain", "https://about.gitlab.com/handbook/", GitHubRepo},
		{"arxiv", "https://arxiv.org/abs/2301.00001", AcademicPaper},
		{"youtube", "https://www.youtube.com/watch?v=abc", VideoPodcast},
		{"youtu.be", "https://youtu.be/abc", VideoPodcast},
		{"velog", "https://velog.io/@user/post", TechBlog},
		{"medium", "https://medium.com/@user/story", TechBlog},
		{"react docs", "https://react.dev/learn", OfficialDocs},
		{"mdn", "https://developer.mozilla.org/en-US/docs/Web", OfficialDocs},
		{"docs subdomain", "https://docs.example.com/start", OfficialDocs},
		{"docs path", "https://example.com/docs/setup", OfficialDocs},
		{"blog subdomain", "https://blog.example.com/entry", TechBlog},
		{"posts path", "https://example.com/posts/2024-review", TechBlog},
		{"plain site", "https://example.com/article", GeneralNews},
		{"unparseable", "://not-a-url", GeneralNews},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyURL(tc.url)
			if got != tc.want {
				t.Fatalf("ClassifyURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestAgentFor(t *testing.T) {
	for _, ct := range ContentTypes {
		agent := AgentFor(ct)
		if agent == nil {
			t.Fatalf("no agent for %q", ct)
		}
		if agent.ContentType() != ct {
			t.Fatalf("agent for %q reports %q", ct, agent.ContentType())
		}
	}

	fallback := AgentFor(ContentType("unknown"))
	if fallback.ContentType() != GeneralNews {
		t.Fatalf("fallback agent = %q, want %q", fallback.ContentType(), GeneralNews)
	}
}
