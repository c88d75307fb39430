// Package render turns a content snapshot into a self-contained HTML
// document sized for US Letter printing. Rendering is pure: the same
// snapshot and customizations always produce the same bytes.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/james-eo/portfolio/resume/model"
)

// Section names accepted in customization ordering and visibility maps.
const (
	SectionSummary    = "summary"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionEducation  = "education"
)

var defaultSectionOrder = []string{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionEducation,
}

type pageData struct {
	Style    style
	Profile  model.Profile
	Sections []section
}

type section struct {
	Name            string
	Title           string
	Summary         string
	SkillCategories []model.SkillCategory
	Experiences     []model.Experience
	Projects        []model.Project
	Education       []model.Education
}

// Render produces the final HTML for one generation. Empty sections are
// omitted entirely, so a snapshot with only a profile yields a document
// with no section headings.
func Render(category string, snap model.Snapshot, cust model.Customizations) (string, error) {
	st, err := styleFor(category).applyCustomizations(cust.ColorScheme, cust.Typography)
	if err != nil {
		return "", fmt.Errorf("apply customizations: %w", err)
	}

	order, err := resolveOrder(cust.SectionOrder)
	if err != nil {
		return "", err
	}

	data := pageData{Style: st, Profile: snap.Profile}
	for _, name := range order {
		if !cust.SectionVisible(name) {
			continue
		}
		if sec, ok := buildSection(name, snap); ok {
			data.Sections = append(data.Sections, sec)
		}
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return sb.String(), nil
}

func resolveOrder(custom []string) ([]string, error) {
	if len(custom) == 0 {
		return defaultSectionOrder, nil
	}
	seen := make(map[string]bool, len(custom))
	out := make([]string, 0, len(defaultSectionOrder))
	for _, name := range custom {
		if !ValidSection(name) {
			return nil, fmt.Errorf("unknown section %q", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	// Sections not mentioned keep their default position after the
	// explicitly ordered ones.
	for _, name := range defaultSectionOrder {
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out, nil
}

// ValidSection reports whether name is a renderable section.
func ValidSection(name string) bool {
	for _, s := range defaultSectionOrder {
		if s == name {
			return true
		}
	}
	return false
}

func buildSection(name string, snap model.Snapshot) (section, bool) {
	switch name {
	case SectionSummary:
		if strings.TrimSpace(snap.Profile.Summary) == "" {
			return section{}, false
		}
		return section{Name: name, Title: "Summary", Summary: snap.Profile.Summary}, true
	case SectionSkills:
		if len(snap.SkillCategories) == 0 {
			return section{}, false
		}
		return section{Name: name, Title: "Skills", SkillCategories: snap.SkillCategories}, true
	case SectionExperience:
		if len(snap.Experiences) == 0 {
			return section{}, false
		}
		return section{Name: name, Title: "Experience", Experiences: snap.Experiences}, true
	case SectionProjects:
		if len(snap.Projects) == 0 {
			return section{}, false
		}
		return section{Name: name, Title: "Projects", Projects: snap.Projects}, true
	case SectionEducation:
		if len(snap.Education) == 0 {
			return section{}, false
		}
		return section{Name: name, Title: "Education", Education: snap.Education}, true
	}
	return section{}, false
}

func formatDateRange(start, end string, current bool) string {
	switch {
	case current:
		return start + " – Present"
	case end != "":
		return start + " – " + end
	default:
		return start
	}
}

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}

var pageTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"dateRange": formatDateRange,
	"join":      joinComma,
}).Parse(pageHTML))
