package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/circleback/internal/models"
)

// Alert is the call-to-action shown for open tasks
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// TaskDetail is everything shown for a single task
type TaskDetail struct {
	Key                  string            `json:"key"`
	Task                 models.TaskRecord `json:"task"`
	Category             models.Category   `json:"category,omitempty"`
	Matched              bool              `json:"matched"`
	DaysOverdue          *int              `json:"days_overdue,omitempty"`
	DaysSinceLastMention *int              `json:"days_since_last_mention,omitempty"`
	Stale                bool              `json:"stale"`
	Alert                *Alert            `json:"alert,omitempty"`
	CanComment           bool              `json:"can_comment"`
	Comments             []*models.Comment `json:"comments"`
}

func buildDetail(rec models.TaskRecord, category models.Category, matched bool, comments []*models.Comment, now time.Time, staleAfter int) *TaskDetail {
	d := &TaskDetail{
		Key:        rec.Key(),
		Task:       rec,
		Matched:    matched,
		Stale:      rec.IsStale(now, staleAfter),
		CanComment: !(matched && category == models.CategoryCompleted),
		Comments:   comments,
	}
	if matched {
		d.Category = category
	}
	if days, ok := rec.DaysOverdue(now); ok {
		d.DaysOverdue = &days
	}
	if days, ok := rec.DaysSinceLastMention(now); ok {
		d.DaysSinceLastMention = &days
	}
	if matched {
		d.Alert = alertFor(d)
	}
	return d
}

// alertFor returns nil for completed tasks
func alertFor(d *TaskDetail) *Alert {
	switch d.Category {
	case models.CategoryGhosted:
		return &Alert{
			Title: "Ghosted Task Alert",
			Message: fmt.Sprintf("This task was assigned %s but has not been completed or followed up on. It's now %s overdue.",
				longDate(d.Task.OriginalDueDate), dayCount(d.DaysOverdue)),
		}
	case models.CategoryPostponed:
		return &Alert{
			Title: "Postponed Task Alert",
			Message: fmt.Sprintf("This task was postponed and last mentioned %s. It's been %s without resolution.",
				longDate(d.Task.LastMentioned), dayCount(d.DaysSinceLastMention)),
		}
	case models.CategoryInProgress:
		return &Alert{
			Title: "In-Progress Task Status",
			Message: fmt.Sprintf("This task is currently in progress. It was last mentioned %s and may need follow-up.",
				longDate(d.Task.LastMentioned)),
		}
	}
	return nil
}

// Markdown renders the detail as a markdown document for terminal display
func (d *TaskDetail) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Task.Description)
	fmt.Fprintf(&b, "**Project:** %s  \n", orDash(d.Task.Project))
	fmt.Fprintf(&b, "**Owner:** %s  \n", orDash(d.Task.Owner))
	fmt.Fprintf(&b, "**Status:** %s  \n", orDash(d.Task.Status))
	if d.Matched {
		fmt.Fprintf(&b, "**Category:** %s\n\n", d.Category.Title())
	} else {
		b.WriteString("**Category:** unclassified\n\n")
	}

	b.WriteString("## Timeline\n\n")
	fmt.Fprintf(&b, "- Mentioned in: %s\n", orDash(d.Task.MentionedInMeeting))
	fmt.Fprintf(&b, "- Original due date: %s", longDate(d.Task.OriginalDueDate))
	if d.DaysOverdue != nil && *d.DaysOverdue > 0 && !d.Task.IsCompleted() {
		fmt.Fprintf(&b, " (%s overdue)", dayCount(d.DaysOverdue))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Last mentioned: %s", longDate(d.Task.LastMentioned))
	if d.DaysSinceLastMention != nil {
		fmt.Fprintf(&b, " (%s ago)", dayCount(d.DaysSinceLastMention))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Follow-up scheduled: %s\n", orDash(d.Task.FollowUpScheduled))
	if d.Task.FinalResolution != "" {
		fmt.Fprintf(&b, "- Resolution: %s\n", d.Task.FinalResolution)
	}

	if d.Alert != nil {
		fmt.Fprintf(&b, "\n> **%s**\n>\n> %s\n", d.Alert.Title, d.Alert.Message)
	}
	if d.Stale {
		b.WriteString("\n_No mention in a while: consider raising it at the next meeting._\n")
	}

	if len(d.Comments) > 0 {
		b.WriteString("\n## Comments\n\n")
		for _, c := range d.Comments {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", c.Author, c.CreatedAt.Format("Jan 2 15:04"), c.Message)
		}
	}

	return b.String()
}

// longDate formats an export date as "March 1, 2024", or returns it unchanged
func longDate(value string) string {
	d, ok := models.ParseDate(value)
	if !ok {
		return orDash(value)
	}
	return d.Format("January 2, 2006")
}

func dayCount(days *int) string {
	if days == nil {
		return "an unknown number of days"
	}
	if *days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", *days)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
