package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// maxCommitAttempts bounds the internal retry on optimistic-concurrency
// failures of the ref update. Each retry restarts from a fresh branch snapshot.
const maxCommitAttempts = 3

// CreateAtomicCommit commits every path in payload in a single commit and
// advances the branch pointer to it in one step. Observers never see a partial
// subset of the payload applied: until the final ref update the new objects are
// unreachable, and the ref update either lands completely or not at all.
func (c *Client) CreateAtomicCommit(ctx context.Context, payload map[string][]byte, message string) (*CommitResult, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("github: empty commit payload")
	}

	var lastErr error
	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		result, err := c.tryCommit(ctx, payload, message)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}

		lastErr = err
		c.logger.Warn("branch moved during commit, retrying from fresh snapshot",
			"attempt", attempt,
			"branch", c.branch,
		)
	}

	return nil, lastErr
}

func (c *Client) tryCommit(ctx context.Context, payload map[string][]byte, message string) (*CommitResult, error) {
	// Snapshot the branch tip.
	baseSHA, err := c.getBranchHead(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve branch head: %w", err)
	}

	var base commitResponse
	if err := c.do(ctx, http.MethodGet, "/repos/"+c.repo+"/git/commits/"+baseSHA, nil, &base, c.timeout); err != nil {
		return nil, fmt.Errorf("fetch base commit: %w", err)
	}

	// Upload blobs in a stable order so retries produce identical trees.
	paths := make([]string, 0, len(payload))
	for path := range payload {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	entries := make([]treeEntry, 0, len(paths))
	for _, path := range paths {
		blobReq := blobCreateRequest{
			Content:  base64.StdEncoding.EncodeToString(payload[path]),
			Encoding: "base64",
		}
		var blob blobCreateResponse
		if err := c.do(ctx, http.MethodPost, "/repos/"+c.repo+"/git/blobs", blobReq, &blob, c.commitTimeout); err != nil {
			return nil, fmt.Errorf("create blob for %s: %w", path, err)
		}
		entries = append(entries, treeEntry{Path: path, Mode: "100644", Type: "blob", SHA: blob.SHA})
	}

	// Layer the changed paths over the existing tree.
	treeReq := treeCreateRequest{BaseTree: base.Tree.SHA, Tree: entries}
	var tree treeCreateResponse
	if err := c.do(ctx, http.MethodPost, "/repos/"+c.repo+"/git/trees", treeReq, &tree, c.commitTimeout); err != nil {
		return nil, fmt.Errorf("create tree: %w", err)
	}

	commitReq := commitCreateRequest{Message: message, Tree: tree.SHA, Parents: []string{baseSHA}}
	var commit commitResponse
	if err := c.do(ctx, http.MethodPost, "/repos/"+c.repo+"/git/commits", commitReq, &commit, c.commitTimeout); err != nil {
		return nil, fmt.Errorf("create commit: %w", err)
	}

	// Advance the branch. A non-fast-forward rejection means the snapshot is
	// stale; the caller retries with a fresh one.
	refReq := refUpdateRequest{SHA: commit.SHA, Force: false}
	err = c.do(ctx, http.MethodPatch, "/repos/"+c.repo+"/git/refs/heads/"+c.branch, refReq, nil, c.commitTimeout)
	if errors.Is(err, ErrConflict) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("update ref: %w", err)
	}

	url := commit.URL
	if url == "" {
		url = fmt.Sprintf("https://github.com/%s/commit/%s", c.repo, commit.SHA)
	}

	return &CommitResult{SHA: commit.SHA, URL: url}, nil
}

func (c *Client) getBranchHead(ctx context.Context) (string, error) {
	var ref refResponse
	if err := c.do(ctx, http.MethodGet, "/repos/"+c.repo+"/git/ref/heads/"+c.branch, nil, &ref, c.timeout); err != nil {
		return "", err
	}
	return ref.Object.SHA, nil
}
