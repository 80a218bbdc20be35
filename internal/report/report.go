// Package report aggregates classified buckets into the figures the
// dashboard, CLI and API present.
package report

import (
	"math"
	"sort"

	"github.com/thenoetrevino/circleback/internal/classify"
	"github.com/thenoetrevino/circleback/internal/models"
)

// CategoryStat is the count and share of one bucket
type CategoryStat struct {
	Category models.Category `json:"category"`
	Title    string          `json:"title"`
	Count    int             `json:"count"`
	Percent  float64         `json:"percent"`
}

// Summary holds the per-bucket figures for a dataset.
// Percentages are relative to Total (every ingested record), so they do not
// sum to 100 when some records are unmatched.
type Summary struct {
	Total      int            `json:"total"`
	Classified int            `json:"classified"`
	Unmatched  int            `json:"unmatched"`
	Categories []CategoryStat `json:"categories"`
}

// Stat returns the figures for one bucket
func (s Summary) Stat(c models.Category) CategoryStat {
	for _, stat := range s.Categories {
		if stat.Category == c {
			return stat
		}
	}
	return CategoryStat{Category: c, Title: c.Title()}
}

// Summarize computes counts and percentages for every bucket in display order
func Summarize(b *classify.Buckets) Summary {
	summary := Summary{
		Total:      b.Total,
		Classified: b.Classified(),
		Unmatched:  len(b.Unmatched),
		Categories: make([]CategoryStat, 0, len(models.Categories)),
	}

	for _, c := range models.Categories {
		count := b.Count(c)
		summary.Categories = append(summary.Categories, CategoryStat{
			Category: c,
			Title:    c.Title(),
			Count:    count,
			Percent:  Percent(count, b.Total),
		})
	}

	return summary
}

// Percent returns 100*count/total rounded to one decimal. An empty dataset yields 0.
func Percent(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)*1000/float64(total)) / 10
}

// OwnerCount is one owner's open work across the non-completed buckets
type OwnerCount struct {
	Owner      string `json:"owner"`
	Ghosted    int    `json:"ghosted"`
	Postponed  int    `json:"postponed"`
	InProgress int    `json:"in_progress"`
	Total      int    `json:"total"`
}

// OwnerBreakdown counts ghosted, postponed and in-progress tasks per owner.
// Completed tasks are excluded. Rows are ordered by total descending; ties
// keep the order in which owners first appear (ghosted, then postponed,
// then in-progress).
func OwnerBreakdown(b *classify.Buckets) []OwnerCount {
	index := make(map[string]int)
	var rows []OwnerCount

	tally := func(c models.Category, bump func(*OwnerCount)) {
		for _, rec := range b.Tasks(c) {
			i, ok := index[rec.Owner]
			if !ok {
				i = len(rows)
				index[rec.Owner] = i
				rows = append(rows, OwnerCount{Owner: rec.Owner})
			}
			bump(&rows[i])
			rows[i].Total++
		}
	}

	tally(models.CategoryGhosted, func(o *OwnerCount) { o.Ghosted++ })
	tally(models.CategoryPostponed, func(o *OwnerCount) { o.Postponed++ })
	tally(models.CategoryInProgress, func(o *OwnerCount) { o.InProgress++ })

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	if rows == nil {
		return []OwnerCount{}
	}
	return rows
}

// TopOwners trims a breakdown to its first n rows. n <= 0 keeps everything.
func TopOwners(rows []OwnerCount, n int) []OwnerCount {
	if n <= 0 || len(rows) <= n {
		return rows
	}
	return rows[:n]
}
