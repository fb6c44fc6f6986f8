package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

var repoNamePattern = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// Config holds GitHub client configuration.
type Config struct {
	Repository        string // "owner/name"
	Branch            string
	BaseURL           string
	Token             string
	Timeout           time.Duration // metadata and single-file calls
	CommitTimeout     time.Duration // commit and file-write calls
	RequestsPerSecond float64
}

// Client wraps the GitHub REST API for single-file operations, directory
// listings and atomic multi-file commits. The branch tip is shared across all
// sync jobs; optimistic concurrency on ref updates protects it.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	repo          string
	branch        string
	token         string
	timeout       time.Duration
	commitTimeout time.Duration
	limiter       *rate.Limiter
	logger        *slog.Logger
}

// New creates a new GitHub client.
func New(cfg Config, logger *slog.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		httpClient:    &http.Client{},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		repo:          cfg.Repository,
		branch:        cfg.Branch,
		token:         cfg.Token,
		timeout:       cfg.Timeout,
		commitTimeout: cfg.CommitTimeout,
		limiter:       rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		logger:        logger.With("component", "github"),
	}
}

// GetFile returns a file with its blob SHA, or nil if the path does not exist.
func (c *Client) GetFile(ctx context.Context, path string) (*FileRecord, error) {
	var resp contentResponse
	err := c.do(ctx, http.MethodGet, c.contentsURL(path)+"?ref="+c.branch, nil, &resp, c.timeout)
	if errors.Is(err, ErrRemoteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(resp.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decode content of %s: %w", path, err)
	}

	return &FileRecord{Path: resp.Path, SHA: resp.SHA, Content: content}, nil
}

// CreateOrUpdateFile upserts a single file. Updating an existing file requires
// its current blob SHA; pass an empty sha for new files.
func (c *Client) CreateOrUpdateFile(ctx context.Context, path string, content []byte, message, sha string) error {
	req := contentWriteRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  c.branch,
		SHA:     sha,
	}
	return c.do(ctx, http.MethodPut, c.contentsURL(path), req, nil, c.commitTimeout)
}

// DeleteFile removes a file if it exists. A missing file, whether detected at
// lookup or during the delete itself, counts as success.
func (c *Client) DeleteFile(ctx context.Context, path, message string) error {
	rec, err := c.GetFile(ctx, path)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}

	req := contentDeleteRequest{Message: message, SHA: rec.SHA, Branch: c.branch}
	err = c.do(ctx, http.MethodDelete, c.contentsURL(path), req, nil, c.commitTimeout)
	if errors.Is(err, ErrRemoteNotFound) {
		// Deleted concurrently between lookup and delete.
		return nil
	}
	return err
}

// ListDirectory lists a directory. An absent directory yields an empty slice.
func (c *Client) ListDirectory(ctx context.Context, path string) ([]DirEntry, error) {
	var entries []DirEntry
	err := c.do(ctx, http.MethodGet, c.contentsURL(path)+"?ref="+c.branch, nil, &entries, c.timeout)
	if errors.Is(err, ErrRemoteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TestConnection validates configuration, credentials, repository access and
// write permission, returning a specific diagnosis on failure.
func (c *Client) TestConnection(ctx context.Context) error {
	if c.token == "" || c.repo == "" {
		return ErrConfigMissing
	}
	if !repoNamePattern.MatchString(c.repo) {
		return fmt.Errorf("github: repository %q is not in owner/name form", c.repo)
	}

	var repo repoResponse
	if err := c.do(ctx, http.MethodGet, "/repos/"+c.repo, nil, &repo, c.timeout); err != nil {
		return err
	}
	if !repo.Permissions.Push {
		return ErrPermissionDenied
	}

	var limits rateLimitResponse
	if err := c.do(ctx, http.MethodGet, "/rate_limit", nil, &limits, c.timeout); err != nil {
		return err
	}
	if limits.Resources.Core.Remaining == 0 {
		return &RateLimitError{ResetAt: time.Unix(limits.Resources.Core.Reset, 0)}
	}

	return nil
}

func (c *Client) contentsURL(path string) string {
	return "/repos/" + c.repo + "/contents/" + strings.TrimLeft(path, "/")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, timeout time.Duration) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	var body apiErrorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden, http.StatusTooManyRequests:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			reset, _ := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)
			return &RateLimitError{ResetAt: time.Unix(reset, 0)}
		}
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrRemoteNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		// The git data API reports non-fast-forward ref updates as 422.
		if strings.Contains(strings.ToLower(body.Message), "fast forward") {
			return ErrConflict
		}
		return &APIError{Status: resp.StatusCode, Message: body.Message}
	default:
		return &APIError{Status: resp.StatusCode, Message: body.Message}
	}
}
