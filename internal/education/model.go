package education

import "time"

// Entry is one education record. Year is a display string ("2016 –
// 2020" or "2020").
type Entry struct {
	ID          string
	Degree      string
	Institution string
	Year        string
	Details     string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
