package skills

import "time"

// Category groups related skill names under a heading.
type Category struct {
	ID        string
	Name      string
	Skills    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
