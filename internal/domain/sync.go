package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus is the closed set of per-post sync states. The persistence layer
// stores it as a plain string; conversion happens only at that boundary.
type SyncStatus string

const (
	SyncStatusUnknown    SyncStatus = "unknown"
	SyncStatusPending    SyncStatus = "pending"
	SyncStatusProcessing SyncStatus = "processing"
	SyncStatusSuccess    SyncStatus = "success"
	SyncStatusError      SyncStatus = "error"
	SyncStatusCancelled  SyncStatus = "cancelled"
)

// ParseSyncStatus maps a stored string to a SyncStatus. Anything unrecognized
// collapses to SyncStatusUnknown.
func ParseSyncStatus(s string) SyncStatus {
	switch SyncStatus(s) {
	case SyncStatusPending, SyncStatusProcessing, SyncStatusSuccess,
		SyncStatusError, SyncStatusCancelled:
		return SyncStatus(s)
	default:
		return SyncStatusUnknown
	}
}

// MaxRetries bounds automatic re-enqueues after a failed sync.
const MaxRetries = 3

// SyncState is the per-post sync record. One row per post, mutated only under
// the per-post processing lock.
type SyncState struct {
	PostID           int64
	Status           SyncStatus
	RetryCount       int
	LastTransitionAt time.Time
	CachedFilePath   *string
	LastCommitRef    *string
}

// SyncJob is the ephemeral unit of work handed to the task runner. Its effect
// is recorded in SyncState; the job itself is never persisted.
type SyncJob struct {
	JobID      uuid.UUID `json:"job_id"`
	PostID     int64     `json:"post_id"`
	Retry      bool      `json:"retry"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// SyncOutcome describes a completed sync run.
type SyncOutcome struct {
	PostID    int64
	Path      string
	CommitSHA string
	CommitURL string
}
