package render

import (
	"strings"
	"testing"

	"github.com/james-eo/portfolio/resume/model"
)

var categories = []string{"minimal", "modern", "professional", "creative", "technical", "custom"}

func fullSnapshot() model.Snapshot {
	return model.Snapshot{
		Profile: model.Profile{
			Name:     "Ada Lovelace",
			Title:    "Software Engineer",
			Summary:  "Builds reliable backends.",
			Email:    "ada@example.com",
			Phone:    "+1 555 0100",
			Location: "London",
			Website:  "https://ada.example.com",
		},
		SkillCategories: []model.SkillCategory{
			{Name: "Languages", Skills: []string{"Go", "SQL"}},
		},
		Experiences: []model.Experience{
			{
				Title:       "Lead Engineer",
				Company:     "Analytical Engines Ltd",
				StartDate:   "Jan 2020",
				Current:     true,
				Description: []string{"Shipped the compute pipeline."},
				Skills:      []string{"Go"},
			},
		},
		Projects: []model.Project{
			{Title: "Difference Engine", Description: "A calculating machine.", Technologies: []string{"brass"}},
		},
		Education: []model.Education{
			{Degree: "BSc Mathematics", Institution: "University of London", Year: "2016 – 2020"},
		},
	}
}

func TestRenderAllCategories(t *testing.T) {
	snap := fullSnapshot()
	for _, cat := range categories {
		html, err := Render(cat, snap, model.Customizations{})
		if err != nil {
			t.Fatalf("Render(%q) error: %v", cat, err)
		}
		for _, want := range []string{
			"Ada Lovelace", "Software Engineer", "ada@example.com",
			"Summary", "Skills", "Experience", "Projects", "Education",
			"size: Letter", "margin: 0.5in",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("category %q: output missing %q", cat, want)
			}
		}
	}
}

func TestRenderAppliesFontStacks(t *testing.T) {
	snap := fullSnapshot()
	for _, cat := range categories {
		html, err := Render(cat, snap, model.Customizations{})
		if err != nil {
			t.Fatalf("Render(%q) error: %v", cat, err)
		}
		want := string(styleFor(cat).FontStack)
		if !strings.Contains(html, "font-family: "+want) {
			t.Errorf("category %q: font stack %q missing from output", cat, want)
		}
		if strings.Contains(html, "ZgotmplZ") {
			t.Errorf("category %q: style value rejected by the escaper", cat)
		}
	}

	html, err := Render("modern", snap, model.Customizations{Typography: "mono"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(html, `"Courier New", Courier, monospace`) {
		t.Error("typography override did not reach the output")
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	snap := model.Snapshot{Profile: model.DefaultProfile()}
	html, err := Render("minimal", snap, model.Customizations{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Contains(html, "<h2>") {
		t.Errorf("profile-only snapshot produced section headings:\n%s", html)
	}
	if !strings.Contains(html, "Your Name") {
		t.Errorf("placeholder name missing")
	}
}

func TestRenderDeterministic(t *testing.T) {
	snap := fullSnapshot()
	cust := model.Customizations{ColorScheme: "green", Typography: "serif"}
	a, err := Render("modern", snap, cust)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	b, err := Render("modern", snap, cust)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if a != b {
		t.Error("same inputs produced different output")
	}
}

func TestRenderEscapesContent(t *testing.T) {
	snap := fullSnapshot()
	snap.Profile.Name = `<script>alert("x")</script> & "quotes"`
	html, err := Render("professional", snap, model.Customizations{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("raw script tag leaked into output")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("angle brackets were not escaped")
	}
}

func TestRenderSectionVisibility(t *testing.T) {
	snap := fullSnapshot()
	cust := model.Customizations{SectionVisibility: map[string]bool{"projects": false}}
	html, err := Render("technical", snap, cust)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Contains(html, "sec-projects") {
		t.Error("hidden section was rendered")
	}
	if !strings.Contains(html, "sec-experience") {
		t.Error("visible section missing")
	}
}

func TestRenderSectionOrder(t *testing.T) {
	snap := fullSnapshot()
	cust := model.Customizations{SectionOrder: []string{"education", "experience"}}
	html, err := Render("minimal", snap, cust)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	edu := strings.Index(html, "sec-education")
	exp := strings.Index(html, "sec-experience")
	sum := strings.Index(html, "sec-summary")
	if edu == -1 || exp == -1 || sum == -1 {
		t.Fatalf("expected sections missing (edu=%d exp=%d sum=%d)", edu, exp, sum)
	}
	if !(edu < exp && exp < sum) {
		t.Errorf("order not honored: edu=%d exp=%d sum=%d", edu, exp, sum)
	}
}

func TestRenderRejectsUnknownCustomizations(t *testing.T) {
	snap := fullSnapshot()
	if _, err := Render("modern", snap, model.Customizations{ColorScheme: "plaid"}); err == nil {
		t.Error("unknown color scheme accepted")
	}
	if _, err := Render("modern", snap, model.Customizations{SectionOrder: []string{"pets"}}); err == nil {
		t.Error("unknown section accepted")
	}
}
