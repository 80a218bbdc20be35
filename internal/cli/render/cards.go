// Package render draws tracker figures for the terminal with lipgloss.
// The CLI prints these directly and the dashboard embeds them.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/circleback/internal/cli/styles"
	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
)

// StatCards renders one card per bucket in display order. The selected
// bucket gets a heavier border; pass "" for none.
func StatCards(summary report.Summary, selected models.Category) string {
	cards := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		cards = append(cards, statCard(summary.Stat(c), c == selected))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	var b strings.Builder
	b.WriteString(row)
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(footer(summary)))
	return b.String()
}

func statCard(stat report.CategoryStat, selected bool) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CategoryText(stat.Category, stat.Title),
		styles.TitleStyle.Render(fmt.Sprintf("%d", stat.Count)),
		styles.SubtitleStyle.Render(FormatPercent(stat.Percent)),
	)
	return styles.StatCard(stat.Category, selected).Render(content)
}

func footer(summary report.Summary) string {
	line := fmt.Sprintf("%d tasks", summary.Total)
	if summary.Unmatched > 0 {
		line += fmt.Sprintf(", %d unmatched", summary.Unmatched)
	}
	return line
}

// FormatPercent renders a share with one decimal
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
