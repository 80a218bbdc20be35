package report

import (
	"errors"
	"sort"
	"strings"

	"github.com/thenoetrevino/circleback/internal/models"
)

// GroupBy selects the field bucket listings are grouped on
type GroupBy string

const (
	GroupByOwner   GroupBy = "owner"
	GroupByProject GroupBy = "project"
)

// ErrInvalidGroupBy is returned for grouping fields other than owner or project
var ErrInvalidGroupBy = errors.New("invalid group-by (must be: owner, project)")

// ParseGroupBy maps user input to a GroupBy. Empty input means owner.
func ParseGroupBy(s string) (GroupBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "owner":
		return GroupByOwner, nil
	case "project":
		return GroupByProject, nil
	}
	return "", ErrInvalidGroupBy
}

// Group is a named slice of tasks from one bucket
type Group struct {
	Name  string              `json:"name"`
	Tasks []models.TaskRecord `json:"tasks"`
}

// GroupTasks groups tasks by owner or project. Groups are sorted by name;
// tasks inside a group keep their input order.
func GroupTasks(tasks []models.TaskRecord, by GroupBy) []Group {
	byName := make(map[string][]models.TaskRecord)
	for _, t := range tasks {
		name := t.Owner
		if by == GroupByProject {
			name = t.Project
		}
		byName[name] = append(byName[name], t)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{Name: name, Tasks: byName[name]})
	}
	return groups
}
