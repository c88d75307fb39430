package main

// Renders a sample resume to HTML and, unless -html-only is set, prints
// it to PDF through headless Chrome. Useful for eyeballing template
// changes without running the API.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/james-eo/portfolio/internal/pdf"
	"github.com/james-eo/portfolio/resume/model"
	"github.com/james-eo/portfolio/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.pdf", "output path for generated PDF")
	category := flag.String("category", "professional", "template category to render")
	htmlOnly := flag.Bool("html-only", false, "write the HTML and skip the Chrome print step")
	flag.Parse()

	snap := sampleSnapshot()

	html, err := render.Render(*category, snap, model.Customizations{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Dir(*outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	htmlPath := filepath.Join(dir, "sample_resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write html failed: %v\n", err)
		os.Exit(1)
	}
	if *htmlOnly {
		fmt.Printf("OK: wrote %s\n", htmlPath)
		return
	}

	engine := pdf.NewEngine(os.Getenv("CHROME_PATH"), 60*time.Second)
	data, err := engine.RenderPDF(context.Background(), html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdf print failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write pdf failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s (%d bytes)\n", *outPath, len(data))
}

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Profile: model.Profile{
			Name:     "Jordan Avery",
			Title:    "Senior Software Engineer",
			Summary:  "Backend engineer focused on reliable service design, data pipelines and developer tooling.",
			Email:    "jordan.avery@example.com",
			Phone:    "+1 555 010 2030",
			Location: "Portland, OR",
			Website:  "https://jordanavery.dev",
			Social: []model.SocialLink{
				{Platform: "GitHub", URL: "https://github.com/javery"},
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/javery"},
			},
		},
		SkillCategories: []model.SkillCategory{
			{Name: "Languages", Skills: []string{"Go", "Python", "SQL"}},
			{Name: "Infrastructure", Skills: []string{"PostgreSQL", "AWS", "Docker", "Kubernetes"}},
		},
		Experiences: []model.Experience{
			{
				Title:       "Senior Software Engineer",
				Company:     "Northwind Systems",
				Location:    "Portland, OR",
				StartDate:   "Mar 2021",
				Current:     true,
				Description: []string{"Own the document processing platform serving 40k requests a day."},
				Skills:      []string{"Go", "PostgreSQL", "AWS"},
			},
			{
				Title:       "Software Engineer",
				Company:     "Cascade Labs",
				StartDate:   "Jun 2017",
				EndDate:     "Feb 2021",
				Description: []string{"Built internal APIs and the billing reconciliation service."},
			},
		},
		Projects: []model.Project{
			{
				Title:        "pgqueue",
				Description:  "A lightweight Postgres-backed job queue.",
				Technologies: []string{"Go", "PostgreSQL"},
				GitHubURL:    "https://github.com/javery/pgqueue",
			},
		},
		Education: []model.Education{
			{Degree: "B.S. Computer Science", Institution: "Oregon State University", Year: "2017"},
		},
	}
}
