// Package model defines the immutable data snapshot a resume is
// rendered from. A snapshot is captured once at generation time so the
// produced document does not change if portfolio content is edited
// afterwards.
package model

// Snapshot is the full set of portfolio content captured for one
// generation run.
type Snapshot struct {
	Profile         Profile         `json:"profile"`
	SkillCategories []SkillCategory `json:"skillCategories,omitempty"`
	Experiences     []Experience    `json:"experiences,omitempty"`
	Projects        []Project       `json:"projects,omitempty"`
	Education       []Education     `json:"education,omitempty"`
}

// Profile holds the header and summary content of the resume.
type Profile struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Summary  string       `json:"summary,omitempty"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone,omitempty"`
	Location string       `json:"location,omitempty"`
	Website  string       `json:"website,omitempty"`
	Social   []SocialLink `json:"social,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Experience dates are display strings captured as entered ("Jan
// 2020", "2021"); Current marks an ongoing role.
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current"`
	Description []string `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Outcomes     []string `json:"outcomes,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	GitHubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Details     string `json:"details,omitempty"`
}

// Customizations are the per-generation presentation overrides a caller
// may supply. Zero values mean template defaults.
type Customizations struct {
	ColorScheme       string          `json:"colorScheme,omitempty"`
	Typography        string          `json:"typography,omitempty"`
	SectionVisibility map[string]bool `json:"sectionVisibility,omitempty"`
	SectionOrder      []string        `json:"sectionOrder,omitempty"`
}

// SectionVisible reports whether a named section should render. Sections
// default to visible unless explicitly turned off.
func (c Customizations) SectionVisible(name string) bool {
	if c.SectionVisibility == nil {
		return true
	}
	v, ok := c.SectionVisibility[name]
	if !ok {
		return true
	}
	return v
}

// DefaultProfile returns placeholder header content used when no
// profile has been published yet.
func DefaultProfile() Profile {
	return Profile{
		Name:  "Your Name",
		Title: "Professional Title",
		Email: "email@example.com",
	}
}
