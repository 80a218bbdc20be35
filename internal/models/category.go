package models

import "strings"

// Category is the lifecycle bucket a task is classified into
type Category string

// Category values. The string form is what the API and CLI accept.
const (
	CategoryGhosted    Category = "ghosted"
	CategoryPostponed  Category = "postponed"
	CategoryInProgress Category = "inProgress"
	CategoryCompleted  Category = "completed"
)

// Categories lists every bucket in display order
var Categories = []Category{
	CategoryGhosted,
	CategoryPostponed,
	CategoryInProgress,
	CategoryCompleted,
}

// Title returns the human readable name used on cards and headers
func (c Category) Title() string {
	switch c {
	case CategoryGhosted:
		return "Ghosted"
	case CategoryPostponed:
		return "Postponed"
	case CategoryInProgress:
		return "In-Progress"
	case CategoryCompleted:
		return "Completed"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the four known buckets
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps user input to a Category.
// Accepts the canonical names plus "in-progress", "inprogress" and "in_progress".
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ghosted":
		return CategoryGhosted, nil
	case "postponed":
		return CategoryPostponed, nil
	case "inprogress", "in-progress", "in_progress":
		return CategoryInProgress, nil
	case "completed":
		return CategoryCompleted, nil
	}
	return "", ErrUnknownCategory
}
