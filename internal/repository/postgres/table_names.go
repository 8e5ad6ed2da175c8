package postgres

import "fmt"

// TableNames holds environment-prefixed table names so dev, test, and
// prod data can share one database.
type TableNames struct {
	Users      string
	Posts      string
	Comments   string
	Categories string
}

// NewTableNames creates table names with the given prefix.
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:      fmt.Sprintf("%susers", prefix),
		Posts:      fmt.Sprintf("%sposts", prefix),
		Comments:   fmt.Sprintf("%scomments", prefix),
		Categories: fmt.Sprintf("%scategories", prefix),
	}
}
