// Package ingest turns a meeting-tracker CSV export into task records
package ingest

import (
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/circleback/internal/models"
)

// Header names of the tracker export. Column order in the file does not matter.
const (
	ColumnProject            = "Project"
	ColumnDescription        = "Task_Description"
	ColumnOwner              = "Owner"
	ColumnStatus             = "Status"
	ColumnMentionedInMeeting = "Mentioned_in_Meeting"
	ColumnOriginalDueDate    = "Original_Due_Date"
	ColumnLastMentioned      = "Last_Mentioned"
	ColumnFollowUpScheduled  = "Follow_Up_Scheduled"
	ColumnFinalResolution    = "Final_Resolution"
)

// byteOrderMark prefixes spreadsheet exports saved as "UTF-8 with BOM"
const byteOrderMark = "\ufeff"

// Columns lists the nine headers projected into a TaskRecord
var Columns = []string{
	ColumnProject,
	ColumnDescription,
	ColumnOwner,
	ColumnStatus,
	ColumnMentionedInMeeting,
	ColumnOriginalDueDate,
	ColumnLastMentioned,
	ColumnFollowUpScheduled,
	ColumnFinalResolution,
}

// SkippedRow describes a data line dropped because its field count did not match the header
type SkippedRow struct {
	Line     int `json:"line"` // 1-based line number in the input
	Fields   int `json:"fields"`
	Expected int `json:"expected"`
}

// Result is the outcome of one parse pass
type Result struct {
	Header         []string
	Records        []models.TaskRecord
	Skipped        []SkippedRow
	MissingColumns []string // known columns absent from the header; their fields are backfilled
}

// Parse reads the whole export. The first line is the header; every later
// non-blank line becomes one record, in input order. Rows whose field count
// differs from the header are skipped and reported, never fatal.
// now supplies the backfill value for missing dates.
func Parse(text string, now time.Time) *Result {
	text = strings.TrimPrefix(text, byteOrderMark)
	lines := strings.Split(text, "\n")

	header := splitHeader(lines[0])
	result := &Result{
		Header:         header,
		Records:        []models.TaskRecord{},
		MissingColumns: missingColumns(header),
	}

	if len(result.MissingColumns) > 0 {
		slog.Warn("export is missing columns, values will be backfilled",
			"missing", strings.Join(result.MissingColumns, ","))
	}

	today := models.Today(now)

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		values := SplitLine(lines[i])
		if len(values) != len(header) {
			slog.Warn("skipping line: column count mismatch",
				"line", i+1, "fields", len(values), "expected", len(header))
			result.Skipped = append(result.Skipped, SkippedRow{
				Line:     i + 1,
				Fields:   len(values),
				Expected: len(header),
			})
			continue
		}

		row := make(map[string]string, len(header))
		for idx, name := range header {
			row[name] = values[idx]
		}

		result.Records = append(result.Records, project(row, today))
	}

	return result
}

// SplitLine splits one data line on commas, honouring double quotes.
// A quote toggles the quoted state and is dropped; a doubled quote is not
// collapsed into a literal one. Every field is trimmed.
func SplitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}

// splitHeader splits the header on bare commas; header names are never quoted
func splitHeader(line string) []string {
	names := strings.Split(line, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, name := range Columns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// project builds a record from a header->value row, backfilling absent or empty fields
func project(row map[string]string, today string) models.TaskRecord {
	return models.TaskRecord{
		Project:            row[ColumnProject],
		Description:        row[ColumnDescription],
		Owner:              row[ColumnOwner],
		Status:             row[ColumnStatus],
		MentionedInMeeting: row[ColumnMentionedInMeeting],
		OriginalDueDate:    orDefault(row[ColumnOriginalDueDate], today),
		LastMentioned:      orDefault(row[ColumnLastMentioned], today),
		FollowUpScheduled:  row[ColumnFollowUpScheduled],
		FinalResolution:    row[ColumnFinalResolution],
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
