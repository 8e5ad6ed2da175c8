// Package seed loads the embedded fixture data and inserts it through
// the service layer, so seeded rows go through the same validation and
// hashing as API traffic.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var dataYAML []byte

// User is a fixture account.
type User struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Category is a fixture category.
type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Post is a fixture post. Author and Category reference other fixtures
// by username and name respectively.
type Post struct {
	Author   string `yaml:"author"`
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
	Status   string `yaml:"status"`
	Category string `yaml:"category"`
}

// Comment is a fixture comment. Post references a fixture post by title.
type Comment struct {
	Post    string `yaml:"post"`
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

// Data is the full fixture set.
type Data struct {
	Users      []User     `yaml:"users"`
	Categories []Category `yaml:"categories"`
	Posts      []Post     `yaml:"posts"`
	Comments   []Comment  `yaml:"comments"`
}

// Load parses the embedded fixture file.
func Load() (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(dataYAML, &data); err != nil {
		return nil, fmt.Errorf("parsing seed data: %w", err)
	}
	return &data, nil
}
