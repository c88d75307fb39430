package profile

import "time"

// Profile is the singleton "about" record behind the portfolio.
type Profile struct {
	ID        string
	Name      string
	Title     string
	Summary   string
	Location  string
	Email     string
	Phone     string
	Social    SocialLinks
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SocialLinks holds the public profile URLs. Empty values are omitted
// from responses and rendered documents.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}
