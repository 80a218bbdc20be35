package render

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/circleback/internal/cli/styles"
	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
)

// Bucket renders a bucket listing: a header then each group with its tasks
func Bucket(view *tracker.BucketView) string {
	var b strings.Builder

	header := fmt.Sprintf("%s (%d)", view.Title, view.Count)
	b.WriteString(styles.CategoryText(view.Category, header))
	b.WriteString("\n")

	if view.Count == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No tasks"))
		return b.String()
	}

	for _, group := range view.Groups {
		b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", group.Name, len(group.Tasks))))
		b.WriteString("\n")
		for _, task := range group.Tasks {
			b.WriteString("  • ")
			b.WriteString(styles.ValueStyle.Render(task.Description))
			b.WriteString(" ")
			b.WriteString(styles.SubtitleStyle.Render("[" + secondary(task, view.GroupBy) + "]"))
			if n := view.CommentCounts[task.Key()]; n > 0 {
				b.WriteString(styles.LabelStyle.Render(fmt.Sprintf(" 💬 %d", n)))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// secondary is the field not used for grouping
func secondary(task models.TaskRecord, by report.GroupBy) string {
	if by == report.GroupByProject {
		return task.Owner
	}
	return task.Project
}

// Classifications renders one line per record: key, bucket and deciding rule
func Classifications(results []tracker.Classification) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		category := styles.SubtitleStyle.Render("unmatched")
		if r.Matched {
			category = styles.CategoryText(r.Category, string(r.Category))
		}
		fmt.Fprintf(&b, "%s  %s  %s",
			styles.ValueStyle.Render(r.Key),
			category,
			styles.SubtitleStyle.Render("("+r.Rule+")"))
	}
	return b.String()
}

// commentWidth is the wrap column for comment bodies
const commentWidth = 72

// Comments renders a comment thread, oldest first
func Comments(comments []*models.Comment) string {
	if len(comments) == 0 {
		return styles.SubtitleStyle.Render("No comments")
	}

	var b strings.Builder
	for i, c := range comments {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n  %s",
			styles.LabelStyle.Render(c.Author),
			styles.SubtitleStyle.Render(c.CreatedAt.Format("Jan 2, 2006 3:04 PM")),
			styles.ValueStyle.Render(indent(wordwrap.String(c.Message, commentWidth), "  ")))
	}
	return b.String()
}

// indent prefixes every line after the first; the first is placed by the caller
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
