package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"post_publisher/internal/config"
	"post_publisher/internal/domain"
	"post_publisher/internal/media"
)

// Orchestrator drives a single post through the full pipeline: fetch,
// media transform, render and atomic commit. It is stateless between
// runs; persistence lives in the queue layer.
type Orchestrator struct {
	source   PostSource
	repo     RepoClient
	media    MediaPipeline
	renderer Renderer
	states   StateStore
	logger   *slog.Logger
	config   config.SyncConfig
}

func NewOrchestrator(
	source PostSource,
	repo RepoClient,
	mediaPipeline MediaPipeline,
	renderer Renderer,
	states StateStore,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *Orchestrator {
	return &Orchestrator{
		source:   source,
		repo:     repo,
		media:    mediaPipeline,
		renderer: renderer,
		states:   states,
		logger:   logger.With("component", "orchestrator"),
		config:   cfg,
	}
}

// Run syncs one post into the target repository and returns the commit
// outcome. Media failures degrade the document rather than abort it; only
// fetch, render and commit errors fail the run.
func (o *Orchestrator) Run(ctx context.Context, postID int64) (*domain.SyncOutcome, error) {
	startTime := time.Now()
	o.logger.Info("starting post sync", "post_id", postID)

	post, err := o.source.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("fetch post: %w", err)
	}

	if !post.IsPublished() {
		return nil, fmt.Errorf("post %d has status %q: %w", postID, post.Status, domain.ErrNotPublishable)
	}

	defer o.media.Cleanup(postID)

	payload := make(map[string][]byte)

	featuredPath := ""
	if post.FeaturedMediaID != nil {
		featuredPath = o.processFeatured(ctx, post, payload)
	}

	contentFiles, imageMap := o.media.ProcessContentImages(ctx, postID, post.Body)
	for path, data := range contentFiles {
		payload[path] = data
	}

	doc, docPath, err := o.renderer.Render(post, imageMap, featuredPath)
	if err != nil {
		return nil, fmt.Errorf("render post: %w", err)
	}
	payload[docPath] = []byte(doc)

	if size := payloadSize(payload); size > o.config.PayloadSoftLimit {
		o.logger.Warn("payload exceeds soft limit",
			"post_id", postID,
			"size", size,
			"limit", o.config.PayloadSoftLimit,
		)
	}

	message := fmt.Sprintf("Sync post: %s", post.Title)
	commit, err := o.repo.CreateAtomicCommit(ctx, payload, message)
	if err != nil {
		return nil, fmt.Errorf("commit post: %w", err)
	}

	o.logger.Info("post synced",
		"post_id", postID,
		"path", docPath,
		"commit_sha", commit.SHA,
		"files", len(payload),
		"duration", time.Since(startTime),
	)

	return &domain.SyncOutcome{
		PostID:    postID,
		Path:      docPath,
		CommitSHA: commit.SHA,
		CommitURL: commit.URL,
	}, nil
}

// processFeatured stages the featured image variants into the payload and
// returns the in-document path, or "" when the image could not be resolved.
func (o *Orchestrator) processFeatured(ctx context.Context, post *domain.Post, payload map[string][]byte) string {
	mediaURL, err := o.source.GetMediaURL(ctx, *post.FeaturedMediaID)
	if err != nil {
		o.logger.Warn("failed to resolve featured image, skipping",
			"post_id", post.ID,
			"media_id", *post.FeaturedMediaID,
			"error", err,
		)
		return ""
	}

	files, docPath := o.media.ProcessFeaturedImage(ctx, post.ID, mediaURL)
	for path, data := range files {
		payload[path] = data
	}
	return docPath
}

// Delete removes a post's document and media directory from the repository.
// Returns the repository paths that were actually deleted.
func (o *Orchestrator) Delete(ctx context.Context, postID int64) ([]string, error) {
	docPath, err := o.resolveDocPath(ctx, postID)
	if err != nil {
		return nil, err
	}

	var deleted []string

	message := fmt.Sprintf("Remove post %d", postID)
	if err := o.repo.DeleteFile(ctx, docPath, message); err != nil {
		return deleted, fmt.Errorf("delete document: %w", err)
	}
	deleted = append(deleted, docPath)

	mediaDir := media.RepoMediaDir(postID)
	entries, err := o.repo.ListDirectory(ctx, mediaDir)
	if err != nil {
		return deleted, fmt.Errorf("list media directory: %w", err)
	}

	for _, entry := range entries {
		if entry.Type != "file" {
			continue
		}
		if err := o.repo.DeleteFile(ctx, entry.Path, message); err != nil {
			o.logger.Warn("failed to delete media file",
				"post_id", postID,
				"path", entry.Path,
				"error", err,
			)
			continue
		}
		deleted = append(deleted, entry.Path)
	}

	o.logger.Info("post removed", "post_id", postID, "deleted", len(deleted))
	return deleted, nil
}

// resolveDocPath prefers the path cached on the sync state so deletion works
// after the post vanished from the source. Falls back to re-deriving it from
// a live fetch and caches the result.
func (o *Orchestrator) resolveDocPath(ctx context.Context, postID int64) (string, error) {
	state, err := o.states.Get(ctx, postID)
	if err != nil {
		return "", fmt.Errorf("get sync state: %w", err)
	}
	if state.CachedFilePath != nil && *state.CachedFilePath != "" {
		return *state.CachedFilePath, nil
	}

	post, err := o.source.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("post %d: %w", postID, domain.ErrPathUnresolvable)
		}
		return "", fmt.Errorf("fetch post: %w", err)
	}

	docPath := o.renderer.DestinationPath(post)

	state.PostID = postID
	state.CachedFilePath = &docPath
	if err := o.states.Upsert(ctx, state); err != nil {
		o.logger.Warn("failed to cache document path", "post_id", postID, "error", err)
	}

	return docPath, nil
}

func payloadSize(payload map[string][]byte) int64 {
	var total int64
	for _, data := range payload {
		total += int64(len(data))
	}
	return total
}
