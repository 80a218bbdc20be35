package colors

import "github.com/thenoetrevino/circleback/internal/models"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Category colors, used on cards, bars and list headers
	Ghosted    string `yaml:"ghosted"`
	Postponed  string `yaml:"postponed"`
	InProgress string `yaml:"in_progress"`
	Completed  string `yaml:"completed"`

	// UI element colors
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ForCategory returns the color assigned to a bucket
func (c *ColorScheme) ForCategory(category models.Category) string {
	switch category {
	case models.CategoryGhosted:
		return c.Ghosted
	case models.CategoryPostponed:
		return c.Postponed
	case models.CategoryInProgress:
		return c.InProgress
	case models.CategoryCompleted:
		return c.Completed
	}
	return c.Normal
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	c.MergeFrom(*GetPreset(c.Preset), false)
}

// MergeFrom copies colors from other. With override set, non-empty values in
// other replace ours; otherwise only our empty values are filled.
func (c *ColorScheme) MergeFrom(other ColorScheme, override bool) {
	fields := []struct {
		dst *string
		src string
	}{
		{&c.Accent, other.Accent},
		{&c.Ghosted, other.Ghosted},
		{&c.Postponed, other.Postponed},
		{&c.InProgress, other.InProgress},
		{&c.Completed, other.Completed},
		{&c.Border, other.Border},
		{&c.SelectedBorder, other.SelectedBorder},
		{&c.Title, other.Title},
		{&c.Subtle, other.Subtle},
		{&c.Normal, other.Normal},
		{&c.InfoFg, other.InfoFg},
		{&c.WarningFg, other.WarningFg},
		{&c.ErrorFg, other.ErrorFg},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		if override || *f.dst == "" {
			*f.dst = f.src
		}
	}
}
