// Package classify assigns each task record to a lifecycle bucket using an
// ordered decision list. The first rule whose predicate holds decides; later
// rules are never consulted.
package classify

import (
	"strings"

	"github.com/thenoetrevino/circleback/internal/models"
)

// Rule names, reported alongside each classification
const (
	RuleNeverResolved = "never-resolved"
	RuleEscalated     = "escalated"
	RuleCompletion    = "completion-keywords"
	RulePending       = "pending-keywords"
	RuleFallback      = "fallback"
)

// Keyword sets. Matching is by substring on lower-cased text, so "nextgen" matches "next".
var (
	escalatedFutureHints = []string{"later", "schedule", "next", "future", "postpone"}
	completionKeywords   = []string{"completed", "resolved", "approved", "finalized", "done", "finished"}
	pendingKeywords      = []string{"pending", "deferred", "waiting"}
	postponedHints       = []string{"delay", "schedule later", "postpone", "next meeting", "next week", "next month"}
	inProgressHints      = []string{"working on", "draft in review", "in progress", "ongoing", "reviewing"}
)

// input is a record prepared for matching: free text lower-cased,
// flag and status kept exact.
type input struct {
	resolution  string
	description string
	followUp    string
	status      string
}

func newInput(t models.TaskRecord) input {
	return input{
		resolution:  strings.ToLower(t.FinalResolution),
		description: strings.ToLower(t.Description),
		followUp:    t.FollowUpScheduled,
		status:      t.Status,
	}
}

// Rule is one entry of the decision list.
// Decide returns ok=false when the rule fires but leaves the record unclassified.
type Rule struct {
	Name    string
	Applies func(in input) bool
	Decide  func(in input) (models.Category, bool)
}

// Rules is the decision list in precedence order
var Rules = []Rule{
	{
		Name:    RuleNeverResolved,
		Applies: func(in input) bool { return strings.Contains(in.resolution, "never resolved") },
		Decide: func(in input) (models.Category, bool) {
			return byFollowUp(in, models.CategoryPostponed, models.CategoryGhosted)
		},
	},
	{
		Name:    RuleEscalated,
		Applies: func(in input) bool { return strings.Contains(in.resolution, "escalated") },
		Decide: func(in input) (models.Category, bool) {
			switch in.followUp {
			case models.FollowUpYes:
				return models.CategoryInProgress, true
			case models.FollowUpNo:
				if containsAny(in.description, escalatedFutureHints) {
					return models.CategoryPostponed, true
				}
				return models.CategoryGhosted, true
			}
			return "", false
		},
	},
	{
		Name:    RuleCompletion,
		Applies: func(in input) bool { return containsAny(in.resolution, completionKeywords) },
		Decide: func(input) (models.Category, bool) {
			return models.CategoryCompleted, true
		},
	},
	{
		Name:    RulePending,
		Applies: func(in input) bool { return containsAny(in.resolution, pendingKeywords) },
		Decide: func(in input) (models.Category, bool) {
			return byFollowUp(in, models.CategoryPostponed, models.CategoryGhosted)
		},
	},
	{
		Name:    RuleFallback,
		Applies: func(input) bool { return true },
		Decide: func(in input) (models.Category, bool) {
			switch {
			case containsAny(in.description, postponedHints):
				return models.CategoryPostponed, true
			case containsAny(in.description, inProgressHints):
				return models.CategoryInProgress, true
			case in.status == models.StatusCompleted:
				return models.CategoryCompleted, true
			default:
				return models.CategoryGhosted, true
			}
		},
	},
}

// byFollowUp maps "Yes" and "No" to the given buckets; any other flag is unmatched
func byFollowUp(in input, yes, no models.Category) (models.Category, bool) {
	switch in.followUp {
	case models.FollowUpYes:
		return yes, true
	case models.FollowUpNo:
		return no, true
	}
	return "", false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
