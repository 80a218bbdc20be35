package models

import (
	"time"
)

// DateLayout is the calendar date format used by the tracker export
const DateLayout = "2006-01-02"

// StatusCompleted is the only Status value the classifier and detail views care about
const StatusCompleted = "Completed"

// Follow-up flag values. Anything else is treated as neither.
const (
	FollowUpYes = "Yes"
	FollowUpNo  = "No"
)

// TaskRecord is one row of a meeting-tracker export.
// All fields are kept as the raw (trimmed) text from the CSV.
type TaskRecord struct {
	Project            string `json:"project"`
	Description        string `json:"description"`
	Owner              string `json:"owner"`
	Status             string `json:"status"`
	MentionedInMeeting string `json:"mentioned_in_meeting"`
	OriginalDueDate    string `json:"original_due_date"`
	LastMentioned      string `json:"last_mentioned"`
	FollowUpScheduled  string `json:"follow_up_scheduled"`
	FinalResolution    string `json:"final_resolution"`
}

// Key identifies a task within one dataset.
// Two rows with the same project and description share a key.
func (t TaskRecord) Key() string {
	return t.Project + "-" + t.Description
}

// IsCompleted reports whether the status column says the task is done
func (t TaskRecord) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// DaysOverdue returns whole days elapsed since the original due date.
// The bool is false when the due date cannot be parsed.
func (t TaskRecord) DaysOverdue(now time.Time) (int, bool) {
	return daysSince(t.OriginalDueDate, now)
}

// DaysSinceLastMention returns whole days elapsed since the task was last mentioned.
func (t TaskRecord) DaysSinceLastMention(now time.Time) (int, bool) {
	return daysSince(t.LastMentioned, now)
}

// IsStale reports whether an open task has not been mentioned for more than
// the given number of days.
func (t TaskRecord) IsStale(now time.Time, days int) bool {
	if t.IsCompleted() {
		return false
	}
	since, ok := t.DaysSinceLastMention(now)
	return ok && since > days
}

// ParseDate parses an export date, accepting a bare date or a full RFC 3339 timestamp
func ParseDate(value string) (time.Time, bool) {
	if d, err := time.Parse(DateLayout, value); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, value); err == nil {
		return d, true
	}
	return time.Time{}, false
}

// Today returns the current UTC date in export format
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

func daysSince(value string, now time.Time) (int, bool) {
	d, ok := ParseDate(value)
	if !ok {
		return 0, false
	}
	return int(now.Sub(d).Hours() / 24), true
}
