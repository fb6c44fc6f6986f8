package hugo

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/net/html"

	"post_publisher/internal/domain"
)

const (
	contentDir   = "content/posts"
	summaryWords = 30
)

var (
	// Gutenberg block annotations, e.g. <!-- wp:paragraph --> and the
	// closing <!-- /wp:paragraph -->.
	blockAnnotationPattern = regexp.MustCompile(`<!--\s*/?wp:[^>]*?-->`)
	// Three or more consecutive blank lines, i.e. four or more newlines.
	blankRunPattern = regexp.MustCompile(`\n{4,}`)
)

// Converter turns HTML into the target lightweight markup. It is an injection
// point so the conversion rules stay replaceable.
type Converter interface {
	Convert(html string) (string, error)
}

// MarkdownConverter is the default Converter, backed by html-to-markdown.
type MarkdownConverter struct {
	conv *md.Converter
}

func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{conv: md.NewConverter("", true, nil)}
}

func (c *MarkdownConverter) Convert(raw string) (string, error) {
	return c.conv.ConvertString(raw)
}

// Renderer builds the destination document and path for a post. It is a pure
// function of its inputs: no network and no mutable state.
type Renderer struct {
	converter Converter
}

func NewRenderer(converter Converter) *Renderer {
	return &Renderer{converter: converter}
}

// DestinationPath derives the stable repository path of a post from its
// publish date and slug, e.g. content/posts/2024-01-15-hello-world.md.
// Re-syncing the same post always targets the same path.
func (r *Renderer) DestinationPath(post *domain.Post) string {
	return fmt.Sprintf("%s/%s-%s.md", contentDir, post.CreatedAt.Format("2006-01-02"), post.Slug)
}

// Render produces the document text and destination path, swapping every
// mapped image URL to its repository-relative path.
func (r *Renderer) Render(post *domain.Post, imageMap map[string]string, featuredPath string) (string, string, error) {
	fm := &FrontMatter{
		Title:       post.Title,
		Date:        post.CreatedAt.Format(time.RFC3339),
		LastMod:     post.ModifiedAt.Format(time.RFC3339),
		Draft:       !post.IsPublished(),
		Description: r.description(post),
		Tags:        post.Tags,
		Categories:  post.Categories,
		Author:      post.AuthorName,
		Image:       featuredPath,
	}

	header, err := fm.Marshal()
	if err != nil {
		return "", "", err
	}

	body, err := r.renderBody(post.Body, imageMap)
	if err != nil {
		return "", "", err
	}

	doc := header + "\n" + body
	if body != "" {
		doc += "\n"
	}

	return doc, r.DestinationPath(post), nil
}

func (r *Renderer) renderBody(raw string, imageMap map[string]string) (string, error) {
	body := blockAnnotationPattern.ReplaceAllString(raw, "")

	// Swap both inline images and hyperlink-style references.
	for original, mapped := range imageMap {
		body = strings.ReplaceAll(body, original, mapped)
	}

	markup, err := r.converter.Convert(body)
	if err != nil {
		return "", fmt.Errorf("convert body: %w", err)
	}

	markup = blankRunPattern.ReplaceAllString(markup, "\n\n")
	return strings.TrimSpace(markup), nil
}

// description prefers the explicit excerpt and otherwise strips markup from
// the body, truncating to a fixed word count.
func (r *Renderer) description(post *domain.Post) string {
	if post.Excerpt != nil {
		if text := strings.TrimSpace(stripTags(*post.Excerpt)); text != "" {
			return text
		}
	}
	return truncateWords(stripTags(post.Body), summaryWords)
}

func stripTags(raw string) string {
	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.WriteString(tokenizer.Token().Data)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ") + "…"
}
