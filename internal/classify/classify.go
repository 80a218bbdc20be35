package classify

import (
	"github.com/thenoetrevino/circleback/internal/models"
)

// Result is the outcome of classifying one record
type Result struct {
	Category models.Category `json:"category,omitempty"`
	Rule     string          `json:"rule"`
	Matched  bool            `json:"matched"`
}

// Classify runs the decision list against one record.
// Matched is false only when rule 1, 2 or 4 fires with a follow-up flag
// other than "Yes" or "No"; the fallback rule always assigns a bucket.
func Classify(t models.TaskRecord) Result {
	in := newInput(t)
	for _, rule := range Rules {
		if !rule.Applies(in) {
			continue
		}
		category, ok := rule.Decide(in)
		return Result{Category: category, Rule: rule.Name, Matched: ok}
	}
	// unreachable: the fallback rule always applies
	return Result{Rule: RuleFallback}
}

// Buckets is the partition of a dataset into categories.
// Each bucket keeps input order. Unmatched records sit outside every bucket.
type Buckets struct {
	byCategory map[models.Category][]models.TaskRecord
	Unmatched  []models.TaskRecord
	Total      int

	// Results holds one Result per input record, in input order
	Results []Result

	// first occurrence of each key, indexing Results
	byKey map[string]int
}

// Partition classifies every record in one pass
func Partition(records []models.TaskRecord) *Buckets {
	b := &Buckets{
		byCategory: make(map[models.Category][]models.TaskRecord, len(models.Categories)),
		Total:      len(records),
		Results:    make([]Result, 0, len(records)),
		byKey:      make(map[string]int, len(records)),
	}
	for _, c := range models.Categories {
		b.byCategory[c] = []models.TaskRecord{}
	}

	for i, rec := range records {
		result := Classify(rec)
		b.Results = append(b.Results, result)
		if _, seen := b.byKey[rec.Key()]; !seen {
			b.byKey[rec.Key()] = i
		}

		if !result.Matched {
			b.Unmatched = append(b.Unmatched, rec)
			continue
		}
		b.byCategory[result.Category] = append(b.byCategory[result.Category], rec)
	}

	return b
}

// Tasks returns the records in bucket c
func (b *Buckets) Tasks(c models.Category) []models.TaskRecord {
	return b.byCategory[c]
}

// Count returns the number of records in bucket c
func (b *Buckets) Count(c models.Category) int {
	return len(b.byCategory[c])
}

// Classified returns how many records landed in some bucket
func (b *Buckets) Classified() int {
	return b.Total - len(b.Unmatched)
}

// CategoryOf returns the category of the first record with the given key.
// The bool is false for unknown keys and unmatched records.
func (b *Buckets) CategoryOf(key string) (models.Category, bool) {
	i, ok := b.byKey[key]
	if !ok {
		return "", false
	}
	result := b.Results[i]
	return result.Category, result.Matched
}
