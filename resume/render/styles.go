package render

import (
	"fmt"
	"html/template"
)

// style captures the visual identity of one template category. The
// values feed the CSS block of the rendered document. Font stacks are
// template.CSS because they contain quoted family names, which the
// contextual escaper would otherwise refuse; every value comes from
// the fixed tables below, never from callers.
type style struct {
	Accent     string
	Heading    string
	Body       string
	Muted      string
	Rule       string
	FontStack  template.CSS
	HeadFont   template.CSS
	HeaderBand bool
}

var styles = map[string]style{
	"minimal": {
		Accent:    "#222222",
		Heading:   "#111111",
		Body:      "#333333",
		Muted:     "#777777",
		Rule:      "#dddddd",
		FontStack: `Georgia, "Times New Roman", serif`,
		HeadFont:  `Georgia, "Times New Roman", serif`,
	},
	"modern": {
		Accent:     "#2563eb",
		Heading:    "#0f172a",
		Body:       "#1e293b",
		Muted:      "#64748b",
		Rule:       "#e2e8f0",
		FontStack:  `"Helvetica Neue", Helvetica, Arial, sans-serif`,
		HeadFont:   `"Helvetica Neue", Helvetica, Arial, sans-serif`,
		HeaderBand: true,
	},
	"professional": {
		Accent:    "#1f3a5f",
		Heading:   "#14213d",
		Body:      "#2b2d42",
		Muted:     "#6c757d",
		Rule:      "#ced4da",
		FontStack: `Cambria, Georgia, serif`,
		HeadFont:  `"Helvetica Neue", Arial, sans-serif`,
	},
	"creative": {
		Accent:     "#9d174d",
		Heading:    "#1f1f1f",
		Body:       "#2d2d2d",
		Muted:      "#8a8a8a",
		Rule:       "#f3d3e0",
		FontStack:  `"Trebuchet MS", Verdana, sans-serif`,
		HeadFont:   `"Trebuchet MS", Verdana, sans-serif`,
		HeaderBand: true,
	},
	"technical": {
		Accent:    "#047857",
		Heading:   "#111827",
		Body:      "#1f2937",
		Muted:     "#6b7280",
		Rule:      "#d1fae5",
		FontStack: `"Courier New", Courier, monospace`,
		HeadFont:  `"Helvetica Neue", Arial, sans-serif`,
	},
}

var fallbackStyle = style{
	Accent:    "#1f3a5f",
	Heading:   "#14213d",
	Body:      "#2b2d42",
	Muted:     "#6c757d",
	Rule:      "#ced4da",
	FontStack: `"Helvetica Neue", Helvetica, Arial, sans-serif`,
	HeadFont:  `"Helvetica Neue", Helvetica, Arial, sans-serif`,
}

// styleFor resolves a category name to its style set. Unknown
// categories (including "custom") get the fallback.
func styleFor(category string) style {
	if s, ok := styles[category]; ok {
		return s
	}
	return fallbackStyle
}

// colorSchemes are caller-selectable accent overrides.
var colorSchemes = map[string]string{
	"blue":     "#2563eb",
	"navy":     "#1f3a5f",
	"green":    "#047857",
	"maroon":   "#9d174d",
	"charcoal": "#374151",
	"black":    "#111111",
}

// typographies are caller-selectable font-stack overrides.
var typographies = map[string]template.CSS{
	"serif": `Georgia, "Times New Roman", serif`,
	"sans":  `"Helvetica Neue", Helvetica, Arial, sans-serif`,
	"mono":  `"Courier New", Courier, monospace`,
}

// ValidColorScheme reports whether name selects a known accent color.
func ValidColorScheme(name string) bool {
	_, ok := colorSchemes[name]
	return ok
}

// ValidTypography reports whether name selects a known font stack.
func ValidTypography(name string) bool {
	_, ok := typographies[name]
	return ok
}

func (s style) applyCustomizations(colorScheme, typography string) (style, error) {
	if colorScheme != "" {
		accent, ok := colorSchemes[colorScheme]
		if !ok {
			return s, fmt.Errorf("unknown color scheme %q", colorScheme)
		}
		s.Accent = accent
	}
	if typography != "" {
		stack, ok := typographies[typography]
		if !ok {
			return s, fmt.Errorf("unknown typography %q", typography)
		}
		s.FontStack = stack
	}
	return s, nil
}
