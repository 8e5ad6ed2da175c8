package models

// Category is a named grouping of posts. Name is unique.
type Category struct {
	ID          int    `json:"category_id" db:"category_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
