package hugo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"post_publisher/internal/domain"
	"post_publisher/testdata/utils"
)

type RendererTestSuite struct {
	suite.Suite
	renderer *Renderer
}

func (s *RendererTestSuite) SetupTest() {
	s.renderer = NewRenderer(NewMarkdownConverter())
}

func TestRendererTestSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (s *RendererTestSuite) post() *domain.Post {
	return &domain.Post{
		ID:         42,
		Title:      "10 SEO Tips",
		Slug:       "10-seo-tips",
		Body:       "<p>First tip.</p>",
		Status:     domain.PostStatusPublished,
		CreatedAt:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		ModifiedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
		AuthorName: "Jane Doe",
		Tags:       []string{"seo", "marketing"},
		Categories: []string{"guides"},
	}
}

func (s *RendererTestSuite) TestDestinationPath() {
	s.Equal("content/posts/2024-01-15-10-seo-tips.md", s.renderer.DestinationPath(s.post()))
}

func (s *RendererTestSuite) TestRender_FrontMatterFields() {
	post := s.post()
	post.Excerpt = utils.Ptr("<p>A short excerpt.</p>")

	doc, path, err := s.renderer.Render(post, nil, "/images/posts/42/featured.webp")
	s.NoError(err)
	s.Equal("content/posts/2024-01-15-10-seo-tips.md", path)

	fm, body, err := ParseFrontMatter(doc)
	s.Require().NoError(err)
	s.Equal("10 SEO Tips", fm.Title)
	s.Equal("2024-01-15T09:30:00Z", fm.Date)
	s.Equal("2024-02-01T12:00:00Z", fm.LastMod)
	s.False(fm.Draft)
	s.Equal("A short excerpt.", fm.Description)
	s.Equal([]string{"seo", "marketing"}, fm.Tags)
	s.Equal([]string{"guides"}, fm.Categories)
	s.Equal("Jane Doe", fm.Author)
	s.Equal("/images/posts/42/featured.webp", fm.Image)
	s.Contains(body, "First tip.")
}

func (s *RendererTestSuite) TestRender_StructuralCharactersSurviveRoundTrip() {
	post := s.post()
	post.Title = `Q&A: "What's next?" [2024 edition]`
	post.Tags = []string{"- leading dash", "colon: inside", "it's quoted"}

	doc, _, err := s.renderer.Render(post, nil, "")
	s.NoError(err)

	fm, _, err := ParseFrontMatter(doc)
	s.Require().NoError(err)
	s.Equal(post.Title, fm.Title)
	s.Equal(post.Tags, fm.Tags)
}

func (s *RendererTestSuite) TestRender_SwapsImageURLs() {
	post := s.post()
	post.Body = `<p>Look:</p><img src="https://blog.example.com/wp-content/uploads/photo.png" alt="a photo">`

	doc, _, err := s.renderer.Render(post, map[string]string{
		"https://blog.example.com/wp-content/uploads/photo.png": "/images/posts/42/photo.webp",
	}, "")
	s.NoError(err)
	s.Contains(doc, "/images/posts/42/photo.webp")
	s.NotContains(doc, "blog.example.com/wp-content")
}

func (s *RendererTestSuite) TestRender_StripsBlockAnnotations() {
	post := s.post()
	post.Body = "<!-- wp:paragraph -->\n<p>Hello.</p>\n<!-- /wp:paragraph -->\n<!-- wp:image {\"id\":7} -->\n<p>Bye.</p>\n<!-- /wp:image -->"

	doc, _, err := s.renderer.Render(post, nil, "")
	s.NoError(err)
	s.NotContains(doc, "wp:paragraph")
	s.NotContains(doc, "wp:image")
	s.Contains(doc, "Hello.")
	s.Contains(doc, "Bye.")
}

// verbatimConverter passes the body through so blank runs reach the
// post-conversion cleanup unchanged.
type verbatimConverter struct{}

func (verbatimConverter) Convert(raw string) (string, error) { return raw, nil }

func (s *RendererTestSuite) TestRender_CollapsesBlankRuns() {
	renderer := NewRenderer(verbatimConverter{})
	post := s.post()
	post.Body = "One.\n\n\n\n\n\nTwo.\n\n\nThree."

	doc, _, err := renderer.Render(post, nil, "")
	s.NoError(err)
	_, body, err := ParseFrontMatter(doc)
	s.Require().NoError(err)

	// Runs of three or more blank lines collapse to one; a two-blank run
	// is left alone.
	s.Equal("One.\n\nTwo.\n\n\nThree.", strings.TrimSpace(body))
}

func (s *RendererTestSuite) TestRender_DraftFlagForUnpublished() {
	post := s.post()
	post.Status = domain.PostStatusDraft

	doc, _, err := s.renderer.Render(post, nil, "")
	s.NoError(err)
	fm, _, err := ParseFrontMatter(doc)
	s.Require().NoError(err)
	s.True(fm.Draft)
}

func (s *RendererTestSuite) TestDescription_FallsBackToTruncatedBody() {
	post := s.post()
	post.Excerpt = nil
	words := make([]string, 40)
	for i := range words {
		words[i] = "word"
	}
	post.Body = "<p>" + strings.Join(words, " ") + "</p>"

	doc, _, err := s.renderer.Render(post, nil, "")
	s.NoError(err)
	fm, _, err := ParseFrontMatter(doc)
	s.Require().NoError(err)
	s.Equal(summaryWords, len(strings.Fields(fm.Description)))
	s.True(strings.HasSuffix(fm.Description, "…"))
}

func (s *RendererTestSuite) TestDescription_EmptyExcerptFallsBack() {
	post := s.post()
	post.Excerpt = utils.Ptr("<p>   </p>")

	doc, _, err := s.renderer.Render(post, nil, "")
	s.NoError(err)
	fm, _, err := ParseFrontMatter(doc)
	s.Require().NoError(err)
	s.Equal("First tip.", fm.Description)
}
