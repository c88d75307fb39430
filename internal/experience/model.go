package experience

import "time"

// Entry is one work-history item. StartDate/EndDate are display
// strings ("Jan 2020", "2021"); an empty EndDate with Current set means
// an ongoing role.
type Entry struct {
	ID          string
	Title       string
	Company     string
	Location    string
	StartDate   string
	EndDate     string
	Current     bool
	Description []string
	Skills      []string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
