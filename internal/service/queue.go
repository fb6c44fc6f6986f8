package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"post_publisher/internal/config"
	"post_publisher/internal/domain"
	"post_publisher/internal/observability"
)

// Queue owns the sync state machine. It turns enqueue requests into jobs for
// the task runner and processes delivered jobs via the orchestrator, guarded
// by a per-post lock so the same post is never synced concurrently.
type Queue struct {
	posts   PostSource
	states  StateStore
	locks   LockStore
	runner  Runner
	syncer  Syncer
	metrics *observability.Metrics
	logger  *slog.Logger
	config  config.SyncConfig
}

func NewQueue(
	posts PostSource,
	states StateStore,
	locks LockStore,
	runner Runner,
	syncer Syncer,
	metrics *observability.Metrics,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *Queue {
	return &Queue{
		posts:   posts,
		states:  states,
		locks:   locks,
		runner:  runner,
		syncer:  syncer,
		metrics: metrics,
		logger:  logger.With("component", "queue"),
		config:  cfg,
	}
}

// Enqueue schedules a fresh sync of the post. Enqueueing a post that is
// already pending or processing is a no-op, so webhook bursts collapse into
// a single job.
func (q *Queue) Enqueue(ctx context.Context, postID int64) error {
	_, err := q.enqueue(ctx, postID, false)
	return err
}

// enqueue reports whether a job was actually dispatched; the silent no-op
// paths (post gone, duplicate, budget exhausted) return false without error.
func (q *Queue) enqueue(ctx context.Context, postID int64, retry bool) (bool, error) {
	if _, err := q.posts.GetPost(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			q.logger.Info("post does not exist, not enqueueing", "post_id", postID)
			return false, nil
		}
		return false, fmt.Errorf("verify post: %w", err)
	}

	state, err := q.states.Get(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("get sync state: %w", err)
	}

	retryCount := 0
	if retry {
		if state.RetryCount >= domain.MaxRetries {
			q.logger.Info("retry budget exhausted, not enqueueing",
				"post_id", postID,
				"retry_count", state.RetryCount,
			)
			return false, nil
		}
		retryCount = state.RetryCount + 1
	}

	ok, err := q.states.MarkPending(ctx, postID, retryCount)
	if err != nil {
		return false, fmt.Errorf("mark pending: %w", err)
	}
	if !ok {
		q.logger.Debug("post already queued, suppressing duplicate", "post_id", postID)
		if q.metrics != nil {
			q.metrics.JobsDropped.Inc()
		}
		return false, nil
	}

	job := &domain.SyncJob{
		JobID:      uuid.New(),
		PostID:     postID,
		Retry:      retry,
		EnqueuedAt: time.Now(),
	}

	if err := q.runner.Dispatch(ctx, job); err != nil {
		q.setStatus(ctx, postID, domain.SyncStatusError, retryCount)
		return false, fmt.Errorf("dispatch job: %w", err)
	}

	if q.metrics != nil {
		q.metrics.JobsEnqueued.Inc()
	}
	q.logger.Info("job enqueued",
		"job_id", job.JobID,
		"post_id", postID,
		"retry", retry,
	)
	return true, nil
}

// Cancel withdraws a pending sync. A job already delivered to a worker cannot
// be recalled from the broker; Process drops it when it sees the state is no
// longer pending.
func (q *Queue) Cancel(ctx context.Context, postID int64) error {
	if err := q.locks.Release(ctx, postID); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}

	q.setStatus(ctx, postID, domain.SyncStatusCancelled, 0)
	q.logger.Info("sync cancelled", "post_id", postID)
	return nil
}

// Process handles one delivered job end to end. It returns an error only for
// infrastructure failures worth redelivering; a failed sync run is recorded
// as status error and acknowledged.
func (q *Queue) Process(ctx context.Context, job *domain.SyncJob) error {
	logger := q.logger.With("job_id", job.JobID, "post_id", job.PostID)

	state, err := q.states.Get(ctx, job.PostID)
	if err != nil {
		return fmt.Errorf("get sync state: %w", err)
	}

	if state.Status != domain.SyncStatusPending {
		logger.Info("dropping stale job", "status", state.Status)
		if q.metrics != nil {
			q.metrics.JobsDropped.Inc()
		}
		return nil
	}

	// The post may have been deleted between enqueue and delivery. Drop the
	// job without touching the state so it does not surface as an error.
	if _, err := q.posts.GetPost(ctx, job.PostID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Info("post no longer exists, dropping job")
			if q.metrics != nil {
				q.metrics.JobsDropped.Inc()
			}
			return nil
		}
		return fmt.Errorf("verify post: %w", err)
	}

	acquired, err := q.locks.TryAcquire(ctx, job.PostID, q.config.LockTTL)
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !acquired {
		logger.Info("post locked by another worker, dropping job")
		if q.metrics != nil {
			q.metrics.JobsDropped.Inc()
		}
		return nil
	}
	defer func() {
		// Release must run even when the job's context was cancelled.
		releaseCtx := context.WithoutCancel(ctx)
		if err := q.locks.Release(releaseCtx, job.PostID); err != nil {
			logger.Warn("failed to release lock", "error", err)
		}
	}()

	if state.RetryCount >= domain.MaxRetries {
		logger.Warn("retry budget exhausted, aborting", "retry_count", state.RetryCount)
		q.setStatus(ctx, job.PostID, domain.SyncStatusError, state.RetryCount)
		return nil
	}

	q.setStatus(ctx, job.PostID, domain.SyncStatusProcessing, state.RetryCount)

	outcome, err := q.syncer.Run(ctx, job.PostID)
	if err != nil {
		logger.Error("sync run failed", "error", err, "retry_count", state.RetryCount)
		q.setStatus(ctx, job.PostID, domain.SyncStatusError, state.RetryCount)
		if q.metrics != nil {
			q.metrics.JobsFailed.Inc()
		}
		return nil
	}

	success := &domain.SyncState{
		PostID:           job.PostID,
		Status:           domain.SyncStatusSuccess,
		RetryCount:       0,
		LastTransitionAt: time.Now(),
		CachedFilePath:   &outcome.Path,
		LastCommitRef:    &outcome.CommitURL,
	}
	if err := q.states.Upsert(ctx, success); err != nil {
		return fmt.Errorf("record success: %w", err)
	}

	if q.metrics != nil {
		q.metrics.JobsSucceeded.Inc()
	}
	logger.Info("job completed", "path", outcome.Path, "commit_sha", outcome.CommitSHA)
	return nil
}

// GetStatus returns the sync state of one post. Posts never enqueued report
// status unknown.
func (q *Queue) GetStatus(ctx context.Context, postID int64) (*domain.SyncState, error) {
	return q.states.Get(ctx, postID)
}

// GetAllStatuses returns the sync state of every post ever enqueued.
func (q *Queue) GetAllStatuses(ctx context.Context) ([]domain.SyncState, error) {
	return q.states.All(ctx)
}

// RetryFailed re-enqueues every errored post that still has retry budget.
// Returns how many were re-enqueued and how many were skipped as exhausted.
func (q *Queue) RetryFailed(ctx context.Context) (retried, skipped int, err error) {
	failed, err := q.states.ListByStatus(ctx, domain.SyncStatusError)
	if err != nil {
		return 0, 0, fmt.Errorf("list failed posts: %w", err)
	}

	for _, state := range failed {
		if state.RetryCount >= domain.MaxRetries {
			skipped++
			continue
		}
		dispatched, err := q.enqueue(ctx, state.PostID, true)
		if err != nil {
			q.logger.Warn("failed to re-enqueue post", "post_id", state.PostID, "error", err)
			skipped++
			continue
		}
		if !dispatched {
			skipped++
			continue
		}
		retried++
	}

	if retried > 0 || skipped > 0 {
		q.logger.Info("retry sweep completed", "retried", retried, "skipped", skipped)
	}
	return retried, skipped, nil
}

// setStatus transitions a post while preserving its cached path and commit
// reference from earlier successful runs.
func (q *Queue) setStatus(ctx context.Context, postID int64, status domain.SyncStatus, retryCount int) {
	state, err := q.states.Get(ctx, postID)
	if err != nil {
		q.logger.Error("failed to load sync state", "post_id", postID, "error", err)
		state = &domain.SyncState{PostID: postID}
	}
	state.PostID = postID
	state.Status = status
	state.RetryCount = retryCount
	state.LastTransitionAt = time.Now()

	if err := q.states.Upsert(ctx, state); err != nil {
		q.logger.Error("failed to update sync state",
			"post_id", postID,
			"status", status,
			"error", err,
		)
	}
}
