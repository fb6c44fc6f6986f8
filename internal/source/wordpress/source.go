package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"post_publisher/internal/domain"
)

// wpTimeLayout is the zone-less format WordPress uses for *_gmt fields.
const wpTimeLayout = "2006-01-02T15:04:05"

// Config holds WordPress source configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source reads posts and attachments from a WordPress REST API.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new WordPress source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "wordpress"),
	}
}

// BaseURL returns the site root this source was configured with.
func (s *Source) BaseURL() string {
	return s.baseURL
}

// GetPost fetches a single post with embedded author and taxonomy terms.
// Returns domain.ErrNotFound if the post does not exist.
func (s *Source) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/posts/%d?_embed=1", s.baseURL, id)

	var post apiPost
	if err := s.getJSON(ctx, url, &post); err != nil {
		return nil, err
	}

	return s.transform(&post)
}

// GetMediaURL resolves an attachment ID to its source URL.
func (s *Source) GetMediaURL(ctx context.Context, mediaID int64) (string, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/media/%d", s.baseURL, mediaID)

	var media apiMedia
	if err := s.getJSON(ctx, url, &media); err != nil {
		return "", err
	}

	return media.SourceURL, nil
}

func (s *Source) getJSON(ctx context.Context, url string, out any) error {
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.doRequest(ctx, url, out)
		if err == nil {
			return nil
		}
		// 404 is definitive, retrying cannot change it.
		if err == domain.ErrNotFound {
			return err
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "PostPublisher/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(p *apiPost) (*domain.Post, error) {
	createdAt, err := time.Parse(wpTimeLayout, p.DateGMT)
	if err != nil {
		return nil, fmt.Errorf("parse date_gmt %q: %w", p.DateGMT, err)
	}

	modifiedAt, err := time.Parse(wpTimeLayout, p.ModifiedGMT)
	if err != nil {
		modifiedAt = createdAt
	}

	post := &domain.Post{
		ID:         p.ID,
		Title:      p.Title.Rendered,
		Slug:       p.Slug,
		Body:       p.Content.Rendered,
		Status:     domain.PostStatus(p.Status),
		CreatedAt:  createdAt.UTC(),
		ModifiedAt: modifiedAt.UTC(),
		AuthorID:   p.Author,
		Link:       p.Link,
	}

	if excerpt := strings.TrimSpace(p.Excerpt.Rendered); excerpt != "" {
		post.Excerpt = &excerpt
	}

	if p.FeaturedMedia > 0 {
		id := p.FeaturedMedia
		post.FeaturedMediaID = &id
	}

	if p.Embedded != nil {
		if len(p.Embedded.Author) > 0 {
			post.AuthorName = p.Embedded.Author[0].Name
		}
		for _, group := range p.Embedded.Terms {
			for _, term := range group {
				switch term.Taxonomy {
				case "post_tag":
					post.Tags = append(post.Tags, term.Name)
				case "category":
					post.Categories = append(post.Categories, term.Name)
				}
			}
		}
	}

	return post, nil
}
