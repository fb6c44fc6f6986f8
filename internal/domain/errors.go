package domain

import "errors"

// Sentinel errors surfaced by the sync pipeline. Remote-API specific failures
// (auth, rate limits, conflicts) live in the github package.
var (
	// ErrNotFound means the post does not exist in the content source.
	ErrNotFound = errors.New("post not found")

	// ErrNotPublishable means the post exists but is not in a publishable
	// lifecycle state.
	ErrNotPublishable = errors.New("post is not publishable")

	// ErrPathUnresolvable means the destination path of a deleted post can
	// no longer be derived and no cached path exists.
	ErrPathUnresolvable = errors.New("destination path cannot be resolved")
)
