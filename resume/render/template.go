package render

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Profile.Name}} — Resume</title>
<style>
@page { size: Letter; margin: 0.5in; }
* { box-sizing: border-box; margin: 0; padding: 0; }
html, body { font-family: {{.Style.FontStack}}; color: {{.Style.Body}}; font-size: 10.5pt; line-height: 1.45; }
header.identity { {{if .Style.HeaderBand}}background: {{.Style.Accent}}; color: #ffffff; padding: 18px 22px; border-radius: 4px;{{else}}border-bottom: 3px solid {{.Style.Accent}}; padding-bottom: 12px;{{end}} margin-bottom: 18px; }
header.identity h1 { font-family: {{.Style.HeadFont}}; font-size: 22pt; {{if not .Style.HeaderBand}}color: {{.Style.Heading}};{{end}} letter-spacing: 0.5px; }
header.identity .role { font-size: 12pt; {{if .Style.HeaderBand}}opacity: 0.9;{{else}}color: {{.Style.Accent}};{{end}} margin-top: 2px; }
header.identity .contact { font-size: 9pt; margin-top: 8px; {{if not .Style.HeaderBand}}color: {{.Style.Muted}};{{end}} }
header.identity .contact span + span::before { content: "  •  "; }
section { margin-bottom: 16px; page-break-inside: avoid; }
section > h2 { font-family: {{.Style.HeadFont}}; font-size: 11.5pt; text-transform: uppercase; letter-spacing: 1.5px; color: {{.Style.Accent}}; border-bottom: 1px solid {{.Style.Rule}}; padding-bottom: 3px; margin-bottom: 8px; }
.entry { margin-bottom: 10px; }
.entry-head { display: flex; justify-content: space-between; align-items: baseline; }
.entry-head h3 { font-size: 10.5pt; color: {{.Style.Heading}}; }
.entry-head .dates { font-size: 9pt; color: {{.Style.Muted}}; white-space: nowrap; }
.entry .subtitle { font-size: 9.5pt; color: {{.Style.Muted}}; font-style: italic; }
.entry ul { margin: 4px 0 0 18px; }
.entry ul li { margin-bottom: 2px; }
.tags { font-size: 9pt; color: {{.Style.Muted}}; margin-top: 3px; }
.skill-row { margin-bottom: 4px; }
.skill-row .cat { font-weight: bold; color: {{.Style.Heading}}; }
.links { font-size: 9pt; margin-top: 3px; }
.links a { color: {{.Style.Accent}}; text-decoration: none; }
</style>
</head>
<body>
<header class="identity">
<h1>{{.Profile.Name}}</h1>
<div class="role">{{.Profile.Title}}</div>
<div class="contact">
<span>{{.Profile.Email}}</span>{{with .Profile.Phone}}<span>{{.}}</span>{{end}}{{with .Profile.Location}}<span>{{.}}</span>{{end}}{{with .Profile.Website}}<span>{{.}}</span>{{end}}{{range .Profile.Social}}<span>{{.URL}}</span>{{end}}
</div>
</header>
{{range .Sections}}
<section class="sec-{{.Name}}">
<h2>{{.Title}}</h2>
{{if eq .Name "summary"}}<p>{{.Summary}}</p>{{end}}
{{if eq .Name "skills"}}{{range .SkillCategories}}<div class="skill-row"><span class="cat">{{.Name}}:</span> {{join .Skills}}</div>{{end}}{{end}}
{{if eq .Name "experience"}}{{range .Experiences}}<div class="entry">
<div class="entry-head"><h3>{{.Title}}</h3><span class="dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
<div class="subtitle">{{.Company}}{{with .Location}} — {{.}}{{end}}</div>
{{if .Description}}<ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .Skills}}<div class="tags">{{join .Skills}}</div>{{end}}
</div>{{end}}{{end}}
{{if eq .Name "projects"}}{{range .Projects}}<div class="entry">
<div class="entry-head"><h3>{{.Title}}</h3></div>
{{with .Description}}<p>{{.}}</p>{{end}}
{{if .Outcomes}}<ul>{{range .Outcomes}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .Technologies}}<div class="tags">{{join .Technologies}}</div>{{end}}
{{if or .LiveURL .GitHubURL}}<div class="links">{{with .LiveURL}}<a href="{{.}}">{{.}}</a> {{end}}{{with .GitHubURL}}<a href="{{.}}">{{.}}</a>{{end}}</div>{{end}}
</div>{{end}}{{end}}
{{if eq .Name "education"}}{{range .Education}}<div class="entry">
<div class="entry-head"><h3>{{.Degree}}</h3><span class="dates">{{.Year}}</span></div>
<div class="subtitle">{{.Institution}}</div>
{{with .Details}}<p>{{.}}</p>{{end}}
</div>{{end}}{{end}}
</section>
{{end}}
</body>
</html>
`
