package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/net/html"
)

const (
	repoMediaRoot = "static/images/posts"
	docMediaRoot  = "/images/posts"

	// FeaturedBasename is the fixed output name for featured images so they
	// are addressable independently of body images.
	FeaturedBasename = "featured"
)

// RepoMediaDir is the repository directory holding all media of one post.
func RepoMediaDir(postID int64) string {
	return fmt.Sprintf("%s/%d", repoMediaRoot, postID)
}

// Config holds media pipeline configuration.
type Config struct {
	SiteURL         string
	Formats         []string
	Quality         int
	DownloadTimeout time.Duration
	TempDir         string
}

// Pipeline downloads embedded and featured images, re-encodes them into the
// configured target formats and stages the results for the commit payload.
// All scratch files of one post live under a per-post scope that Cleanup
// removes in one call.
type Pipeline struct {
	httpClient *http.Client
	siteURL    string
	encoders   []Encoder
	tempDir    string
	logger     *slog.Logger
}

// New creates a new media pipeline.
func New(cfg Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		httpClient: &http.Client{
			Timeout: cfg.DownloadTimeout,
		},
		siteURL:  strings.TrimRight(cfg.SiteURL, "/"),
		encoders: NewEncoders(cfg.Formats, cfg.Quality),
		tempDir:  cfg.TempDir,
		logger:   logger.With("component", "media"),
	}
}

// DiscoverImages extracts image URLs from the post body that belong to the
// local site, deduplicated, in document order. Externally hosted images are
// left alone.
func (p *Pipeline) DiscoverImages(body string) []string {
	var urls []string
	seen := make(map[string]bool)

	tokenizer := html.NewTokenizer(strings.NewReader(body))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			return urls
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		token := tokenizer.Token()
		if token.Data != "img" {
			continue
		}
		for _, attr := range token.Attr {
			if attr.Key != "src" {
				continue
			}
			src := attr.Val
			if !strings.HasPrefix(src, p.siteURL+"/") || seen[src] {
				continue
			}
			seen[src] = true
			urls = append(urls, src)
		}
	}
}

// ProcessContentImages runs every local body image through the transform.
// A single image's failure is logged and that image is skipped; it never
// aborts the remaining images. Returns the repo files to commit and the
// original-URL to document-path mapping.
func (p *Pipeline) ProcessContentImages(ctx context.Context, postID int64, body string) (map[string][]byte, map[string]string) {
	files := make(map[string][]byte)
	mapping := make(map[string]string)
	usedNames := make(map[string]bool)

	for _, imgURL := range p.DiscoverImages(body) {
		basename := p.basenameFor(imgURL, usedNames)
		variants, chosen, err := p.fetchAndTransform(ctx, postID, imgURL, basename)
		if err != nil {
			p.logger.Warn("skipping image",
				"post_id", postID,
				"url", imgURL,
				"error", err,
			)
			continue
		}
		for repoPath, data := range variants {
			files[repoPath] = data
		}
		mapping[imgURL] = chosen
	}

	return files, mapping
}

// ProcessFeaturedImage applies the same transform to the featured image under
// the fixed basename. A failure is logged and yields an empty result.
func (p *Pipeline) ProcessFeaturedImage(ctx context.Context, postID int64, imgURL string) (map[string][]byte, string) {
	variants, chosen, err := p.fetchAndTransform(ctx, postID, imgURL, FeaturedBasename)
	if err != nil {
		p.logger.Warn("skipping featured image",
			"post_id", postID,
			"url", imgURL,
			"error", err,
		)
		return nil, ""
	}
	return variants, chosen
}

// Cleanup removes the whole per-post temp scope. Safe to call when nothing
// was downloaded.
func (p *Pipeline) Cleanup(postID int64) {
	scope := p.scopeDir(postID)
	if err := os.RemoveAll(scope); err != nil {
		p.logger.Warn("failed to remove temp scope", "post_id", postID, "error", err)
	}
}

// fetchAndTransform downloads one image into the post's temp scope and encodes
// it into each configured format. The in-document path uses the first variant
// that encoded successfully; when all encoders fail the original bytes are
// staged unmodified under the original extension.
func (p *Pipeline) fetchAndTransform(ctx context.Context, postID int64, imgURL, basename string) (map[string][]byte, string, error) {
	origExt := originalExtension(imgURL)

	data, err := p.download(ctx, postID, imgURL, basename+"."+origExt)
	if err != nil {
		return nil, "", err
	}

	variants := make(map[string][]byte)
	chosen := ""

	img, _, decodeErr := image.Decode(bytes.NewReader(data))
	if decodeErr != nil {
		p.logger.Debug("image not decodable, keeping original bytes",
			"url", imgURL,
			"error", decodeErr,
		)
	} else {
		for _, enc := range p.encoders {
			encoded, err := enc.Encode(img)
			if err != nil {
				p.logger.Debug("encoder skipped",
					"format", enc.Format(),
					"url", imgURL,
					"error", err,
				)
				continue
			}
			variants[p.repoPath(postID, basename, enc.Format())] = encoded
			if chosen == "" {
				chosen = p.docPath(postID, basename, enc.Format())
			}
		}
	}

	if len(variants) == 0 {
		variants[p.repoPath(postID, basename, origExt)] = data
		chosen = p.docPath(postID, basename, origExt)
	}

	return variants, chosen, nil
}

func (p *Pipeline) download(ctx context.Context, postID int64, imgURL, filename string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imgURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	scope := p.scopeDir(postID)
	if err := os.MkdirAll(scope, 0o755); err != nil {
		return nil, fmt.Errorf("create temp scope: %w", err)
	}
	if err := os.WriteFile(filepath.Join(scope, filename), data, 0o644); err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	return data, nil
}

func (p *Pipeline) scopeDir(postID int64) string {
	return filepath.Join(p.tempDir, strconv.FormatInt(postID, 10))
}

func (p *Pipeline) repoPath(postID int64, basename, format string) string {
	return fmt.Sprintf("%s/%d/%s.%s", repoMediaRoot, postID, basename, format)
}

func (p *Pipeline) docPath(postID int64, basename, format string) string {
	return fmt.Sprintf("%s/%d/%s.%s", docMediaRoot, postID, basename, format)
}

func (p *Pipeline) basenameFor(imgURL string, used map[string]bool) string {
	base := "image"
	if u, err := url.Parse(imgURL); err == nil {
		name := path.Base(u.Path)
		name = strings.TrimSuffix(name, path.Ext(name))
		if name != "" && name != "." && name != "/" {
			base = name
		}
	}

	candidate := base
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	used[candidate] = true
	return candidate
}

func originalExtension(imgURL string) string {
	ext := "bin"
	if u, err := url.Parse(imgURL); err == nil {
		if e := strings.TrimPrefix(path.Ext(u.Path), "."); e != "" {
			ext = strings.ToLower(e)
		}
	}
	return ext
}
