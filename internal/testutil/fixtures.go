// Package testutil holds fixtures and helpers shared by package tests
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// SampleHeader is the canonical export header
const SampleHeader = "Project,Task_Description,Owner,Status,Mentioned_in_Meeting,Original_Due_Date,Last_Mentioned,Follow_Up_Scheduled,Final_Resolution"

// SampleCSV exercises every classification rule.
//
//	ghosted:    4 (Alice, Bob, Dave x2)
//	postponed:  4 (Bob x2, Carol, Dave)
//	inProgress: 2 (Alice x2)
//	completed:  2
//	unmatched:  1 (Erin, follow-up "Maybe")
//	skipped:    1 (line 16, ten fields)
const SampleCSV = SampleHeader + `
Apollo,Update vendor contract,Alice,Open,Weekly Sync,2024-01-10,2024-01-20,No,Never Resolved
Apollo,Prepare budget review,Bob,Open,Weekly Sync,2024-01-12,2024-02-01,Yes,Never Resolved
Borealis,Fix login outage,Alice,Open,Incident Review,2024-01-15,2024-02-03,Yes,Escalated
Borealis,Will revisit later,Carol,Open,Incident Review,2024-01-18,2024-02-04,No,Escalated
Borealis,Audit access logs,Bob,Open,Incident Review,2024-01-20,2024-02-05,No,Escalated
Cygnus,Ship onboarding guide,Carol,Completed,Planning,2024-01-22,2024-02-06,No,Approved by leadership
Cygnus,Hire contractor,Dave,Open,Planning,2024-01-25,2024-02-07,Yes,Pending budget
Cygnus,Renew licenses,Dave,Open,Planning,2024-01-26,2024-02-08,No,Waiting on legal
Draco,Currently reviewing the draft,Alice,Open,Retro,2024-01-28,2024-02-09,No,
Draco,"Delay rollout, revisit next week",Bob,Open,Retro,2024-01-29,2024-02-10,No,
Draco,Publish release notes,Carol,Completed,Retro,2024-01-30,2024-02-11,No,
Draco,Clean up backlog,Dave,Open,Retro,2024-01-31,2024-02-12,No,

Eridani,Migrate dashboards,Erin,Open,Weekly Sync,2024-02-01,2024-02-13,Maybe,Never Resolved
Eridani,Extra field row,Erin,Open,Weekly Sync,2024-02-02,2024-02-14,No,,extra
`

// Counts expected from SampleCSV
const (
	SampleTotal      = 13
	SampleGhosted    = 4
	SamplePostponed  = 4
	SampleInProgress = 2
	SampleCompleted  = 2
	SampleUnmatched  = 1
	SampleSkipped    = 1
)

// SampleNow is a fixed clock for date backfills and day counts
var SampleNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// WriteSampleCSV writes content to a temp file and returns its path
func WriteSampleCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tracker.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write sample CSV: %v", err)
	}
	return path
}

// FakeFetcher serves a fixed body (or error) in place of the default dataset URL
type FakeFetcher struct {
	Body string
	Err  error

	mu    sync.Mutex
	calls int
	urls  []string
}

// Fetch records the call and returns the configured body or error
func (f *FakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.urls = append(f.urls, url)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Body, nil
}

// Calls returns how many times Fetch was invoked
func (f *FakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// URLs returns every URL passed to Fetch, in order
func (f *FakeFetcher) URLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}
