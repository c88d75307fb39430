package projects

import "time"

// Project is a portfolio work sample.
type Project struct {
	ID           string
	Title        string
	Description  string
	Outcomes     []string
	Technologies []string
	GitHubURL    string
	LiveURL      string
	ImageURL     string
	Featured     bool
	Order        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
