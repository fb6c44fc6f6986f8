package domain

import "time"

// PostStatus is the lifecycle state of a post in the content source.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPending   PostStatus = "pending"
	PostStatusPrivate   PostStatus = "private"
	PostStatusPublished PostStatus = "publish"
)

type Post struct {
	ID              int64
	Title           string
	Slug            string
	Body            string // raw HTML as delivered by the source
	Excerpt         *string
	Status          PostStatus
	CreatedAt       time.Time
	ModifiedAt      time.Time
	AuthorID        int64
	AuthorName      string
	Tags            []string
	Categories      []string
	FeaturedMediaID *int64
	Link            string
}

// IsPublished reports whether the post may be synced. Drafts, pending and
// private posts are never pushed to the repository.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
