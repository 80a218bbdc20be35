package render

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/circleback/internal/cli/styles"
	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
)

const (
	barRune     = "█"
	minBarWidth = 10
)

// OwnerChart draws a stacked horizontal bar per owner: ghosted, postponed,
// then in-progress segments, scaled so the busiest owner fills barWidth.
func OwnerChart(rows []report.OwnerCount, barWidth int) string {
	if len(rows) == 0 {
		return styles.SubtitleStyle.Render("No open tasks")
	}
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	nameWidth := 0
	maxTotal := 0
	for _, row := range rows {
		nameWidth = max(nameWidth, len([]rune(row.Owner)))
		maxTotal = max(maxTotal, row.Total)
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		name := row.Owner + strings.Repeat(" ", nameWidth-len([]rune(row.Owner)))
		b.WriteString(styles.ValueStyle.Render(name))
		b.WriteString(" ")
		b.WriteString(bar(row, maxTotal, barWidth))
		b.WriteString(" ")
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d", row.Total)))
	}
	b.WriteString("\n")
	b.WriteString(Legend())
	return b.String()
}

// bar stacks the row's segments. Segment ends are scaled cumulatively so
// the busiest owner fills barWidth exactly; a non-zero count gets at least
// one cell.
func bar(row report.OwnerCount, maxTotal, barWidth int) string {
	if maxTotal == 0 {
		return ""
	}

	segments := []struct {
		category models.Category
		count    int
	}{
		{models.CategoryGhosted, row.Ghosted},
		{models.CategoryPostponed, row.Postponed},
		{models.CategoryInProgress, row.InProgress},
	}

	var b strings.Builder
	cum, drawn := 0, 0
	for _, seg := range segments {
		if seg.count == 0 {
			continue
		}
		cum += seg.count
		cells := max(cum*barWidth/maxTotal-drawn, 1)
		drawn += cells
		b.WriteString(styles.ColoredText(strings.Repeat(barRune, cells), styles.CategoryColor(seg.category)))
	}
	return b.String()
}

// Legend names the bar colors
func Legend() string {
	parts := make([]string, 0, 3)
	for _, c := range []models.Category{models.CategoryGhosted, models.CategoryPostponed, models.CategoryInProgress} {
		parts = append(parts, styles.ColoredText(barRune, styles.CategoryColor(c))+" "+c.Title())
	}
	return strings.Join(parts, "  ")
}

// OwnerTable renders the breakdown as aligned plain columns
func OwnerTable(rows []report.OwnerCount) string {
	nameWidth := len("Owner")
	for _, row := range rows {
		nameWidth = max(nameWidth, len([]rune(row.Owner)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %7s  %9s  %11s  %5s\n", nameWidth, "Owner", "Ghosted", "Postponed", "In-Progress", "Total")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-*s  %7d  %9d  %11d  %5d\n", nameWidth, row.Owner, row.Ghosted, row.Postponed, row.InProgress, row.Total)
	}
	return strings.TrimRight(b.String(), "\n")
}
