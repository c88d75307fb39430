package resumetemplates

import "time"

// Categories a template may belong to. The five built-in categories
// each ship with a seeded default template; "custom" covers everything
// user-made.
const (
	CategoryModern       = "modern"
	CategoryProfessional = "professional"
	CategoryCreative     = "creative"
	CategoryMinimal      = "minimal"
	CategoryTechnical    = "technical"
	CategoryCustom       = "custom"
)

var validCategories = map[string]bool{
	CategoryModern:       true,
	CategoryProfessional: true,
	CategoryCreative:     true,
	CategoryMinimal:      true,
	CategoryTechnical:    true,
	CategoryCustom:       true,
}

// BuiltinCategories are the categories that can be rendered directly by
// name without a persisted generation record.
var BuiltinCategories = []string{
	CategoryMinimal,
	CategoryModern,
	CategoryProfessional,
	CategoryCreative,
	CategoryTechnical,
}

func ValidCategory(c string) bool { return validCategories[c] }

// Template is a resume layout definition. Deleting deactivates; an
// inactive template stays resolvable so old generations keep their
// reference.
type Template struct {
	ID            string
	Name          string
	DisplayName   string
	Description   string
	Category      string
	IsActive      bool
	IsDefault     bool
	Data          TemplateData
	PreviewImage  string
	DownloadCount int
	RatingAverage float64
	RatingCount   int
	Tags          []string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TemplateData holds the layout parameters stored as JSON.
type TemplateData struct {
	Layout            string          `json:"layout,omitempty"`
	ColorScheme       string          `json:"colorScheme,omitempty"`
	Typography        Typography      `json:"typography"`
	Spacing           string          `json:"spacing,omitempty"`
	SectionOrder      []string        `json:"sectionOrder,omitempty"`
	SectionVisibility map[string]bool `json:"sectionVisibility,omitempty"`
}

type Typography struct {
	FontFamily   string `json:"fontFamily,omitempty"`
	BaseFontSize string `json:"baseFontSize,omitempty"`
	HeadingSize  string `json:"headingSize,omitempty"`
}

// Rating is one principal's score for a template. Re-rating overwrites
// the existing row.
type Rating struct {
	ID         string
	TemplateID string
	UserID     string
	SessionID  string
	Score      int
	Review     string
	Reported   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
