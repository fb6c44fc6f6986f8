package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// LockStore implements the per-post processing lock. A lock exists only while
// an orchestration run is in flight; the locked_until column bounds its
// lifetime so a crashed worker cannot block a post forever.
type LockStore struct {
	db *sqlx.DB
}

func NewLockStore(db *sqlx.DB) *LockStore {
	return &LockStore{db: db}
}

// TryAcquire attempts to take the lock for a post. Returns false when a live
// lock is held by someone else. An expired lock is taken over.
func (s *LockStore) TryAcquire(ctx context.Context, postID int64, ttl time.Duration) (bool, error) {
	query := `
		INSERT INTO sync_locks (post_id, locked_until)
		VALUES ($1, now() + make_interval(secs => $2))
		ON CONFLICT (post_id) DO UPDATE SET
			locked_until = EXCLUDED.locked_until
		WHERE sync_locks.locked_until < now()`

	res, err := s.db.ExecContext(ctx, query, postID, ttl.Seconds())
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// Release drops the lock. Releasing a lock that does not exist is a no-op.
func (s *LockStore) Release(ctx context.Context, postID int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sync_locks WHERE post_id = $1", postID)
	return err
}
