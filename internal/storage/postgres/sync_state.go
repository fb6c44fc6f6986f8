package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"post_publisher/internal/domain"
)

// syncStateRow is the persistence shape. Status is a plain string here;
// translation to the closed enum happens only at this boundary.
type syncStateRow struct {
	PostID           int64          `db:"post_id"`
	Status           string         `db:"status"`
	RetryCount       int            `db:"retry_count"`
	LastTransitionAt time.Time      `db:"last_transition_at"`
	CachedFilePath   sql.NullString `db:"cached_file_path"`
	LastCommitRef    sql.NullString `db:"last_commit_ref"`
}

func (r *syncStateRow) toDomain() domain.SyncState {
	state := domain.SyncState{
		PostID:           r.PostID,
		Status:           domain.ParseSyncStatus(r.Status),
		RetryCount:       r.RetryCount,
		LastTransitionAt: r.LastTransitionAt,
	}
	if r.CachedFilePath.Valid {
		v := r.CachedFilePath.String
		state.CachedFilePath = &v
	}
	if r.LastCommitRef.Valid {
		v := r.LastCommitRef.String
		state.LastCommitRef = &v
	}
	return state
}

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

// Get returns the sync state of a post. Posts never synced before get a zero
// state with status unknown.
func (s *SyncStateStore) Get(ctx context.Context, postID int64) (*domain.SyncState, error) {
	var row syncStateRow
	query := `
		SELECT post_id, status, retry_count, last_transition_at, cached_file_path, last_commit_ref
		FROM post_sync_state
		WHERE post_id = $1`

	err := s.db.GetContext(ctx, &row, query, postID)
	if err == sql.ErrNoRows {
		return &domain.SyncState{
			PostID: postID,
			Status: domain.SyncStatusUnknown,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	state := row.toDomain()
	return &state, nil
}

// Upsert writes the full state of a post.
func (s *SyncStateStore) Upsert(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO post_sync_state (post_id, status, retry_count, last_transition_at, cached_file_path, last_commit_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (post_id) DO UPDATE SET
			status = EXCLUDED.status,
			retry_count = EXCLUDED.retry_count,
			last_transition_at = EXCLUDED.last_transition_at,
			cached_file_path = EXCLUDED.cached_file_path,
			last_commit_ref = EXCLUDED.last_commit_ref`

	_, err := s.db.ExecContext(ctx, query,
		state.PostID,
		string(state.Status),
		state.RetryCount,
		state.LastTransitionAt,
		state.CachedFilePath,
		state.LastCommitRef,
	)
	return err
}

// MarkPending atomically transitions a post to pending unless a sync is
// already pending or processing. Returns false when the transition was
// suppressed, which makes double-enqueues race-free without a separate
// transaction.
func (s *SyncStateStore) MarkPending(ctx context.Context, postID int64, retryCount int) (bool, error) {
	query := `
		INSERT INTO post_sync_state (post_id, status, retry_count, last_transition_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (post_id) DO UPDATE SET
			status = EXCLUDED.status,
			retry_count = EXCLUDED.retry_count,
			last_transition_at = EXCLUDED.last_transition_at
		WHERE post_sync_state.status NOT IN ($4, $5)`

	res, err := s.db.ExecContext(ctx, query,
		postID,
		string(domain.SyncStatusPending),
		retryCount,
		string(domain.SyncStatusPending),
		string(domain.SyncStatusProcessing),
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ListByStatus returns all states currently in the given status.
func (s *SyncStateStore) ListByStatus(ctx context.Context, status domain.SyncStatus) ([]domain.SyncState, error) {
	var rows []syncStateRow
	query := `
		SELECT post_id, status, retry_count, last_transition_at, cached_file_path, last_commit_ref
		FROM post_sync_state
		WHERE status = $1
		ORDER BY post_id`

	if err := s.db.SelectContext(ctx, &rows, query, string(status)); err != nil {
		return nil, err
	}

	states := make([]domain.SyncState, 0, len(rows))
	for i := range rows {
		states = append(states, rows[i].toDomain())
	}
	return states, nil
}

// All returns every known sync state.
func (s *SyncStateStore) All(ctx context.Context) ([]domain.SyncState, error) {
	var rows []syncStateRow
	query := `
		SELECT post_id, status, retry_count, last_transition_at, cached_file_path, last_commit_ref
		FROM post_sync_state
		ORDER BY post_id`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	states := make([]domain.SyncState, 0, len(rows))
	for i := range rows {
		states = append(states, rows[i].toDomain())
	}
	return states, nil
}
