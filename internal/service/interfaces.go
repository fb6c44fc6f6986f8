package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"post_publisher/internal/domain"
	"post_publisher/internal/github"
)

type PostSource interface {
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	GetMediaURL(ctx context.Context, mediaID int64) (string, error)
}

type RepoClient interface {
	CreateAtomicCommit(ctx context.Context, files map[string][]byte, message string) (*github.CommitResult, error)
	DeleteFile(ctx context.Context, path, message string) error
	ListDirectory(ctx context.Context, path string) ([]github.DirEntry, error)
}

type MediaPipeline interface {
	ProcessContentImages(ctx context.Context, postID int64, body string) (files map[string][]byte, urlMapping map[string]string)
	ProcessFeaturedImage(ctx context.Context, postID int64, imgURL string) (files map[string][]byte, docPath string)
	Cleanup(postID int64)
}

type Renderer interface {
	Render(post *domain.Post, imageMap map[string]string, featuredPath string) (doc, path string, err error)
	DestinationPath(post *domain.Post) string
}

type StateStore interface {
	Get(ctx context.Context, postID int64) (*domain.SyncState, error)
	Upsert(ctx context.Context, state *domain.SyncState) error
	MarkPending(ctx context.Context, postID int64, retryCount int) (bool, error)
	ListByStatus(ctx context.Context, status domain.SyncStatus) ([]domain.SyncState, error)
	All(ctx context.Context) ([]domain.SyncState, error)
}

type LockStore interface {
	TryAcquire(ctx context.Context, postID int64, ttl time.Duration) (bool, error)
	Release(ctx context.Context, postID int64) error
}

type Runner interface {
	Dispatch(ctx context.Context, job *domain.SyncJob) error
}

type Syncer interface {
	Run(ctx context.Context, postID int64) (*domain.SyncOutcome, error)
	Delete(ctx context.Context, postID int64) ([]string, error)
}
