package models

import "time"

// Comment is content attached to exactly one post, authored by one user.
type Comment struct {
	ID        string    `json:"comment_id" db:"comment_id"`
	PostID    string    `json:"post_id" db:"post_id"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// PostAuthorID is populated only by lookups that join the parent post,
	// for the moderation rule that lets a post's author delete comments on
	// their own post. Not serialized.
	PostAuthorID string `json:"-" db:"-"`
}
