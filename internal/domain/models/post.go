package models

import "time"

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidPostStatuses is the closed set of accepted status values.
var ValidPostStatuses = []string{StatusDraft, StatusPublished}

// IsValidPostStatus reports whether status is one of the enumerated values.
// Unrecognized values are rejected, never coerced.
func IsValidPostStatus(status string) bool {
	for _, s := range ValidPostStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// Post is authored content. CategoryID is nil for uncategorized posts.
type Post struct {
	ID         string    `json:"post_id" db:"post_id"`
	AuthorID   string    `json:"author_id" db:"author_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Status     string    `json:"status" db:"status"`
	CategoryID *int      `json:"category_id" db:"category_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
