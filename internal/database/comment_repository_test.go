package database

import (
	"context"
	"testing"
	"time"
)

// ============================================================================
// Schema Tests
// ============================================================================

func TestInitDB_CreatesCommentsTable(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'comments'`).Scan(&name)
	if err != nil {
		t.Fatalf("comments table missing: %v", err)
	}
}

func TestInitDB_MigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}
}

func TestIsMemory(t *testing.T) {
	tests := []struct {
		dsn      string
		expected bool
	}{
		{":memory:", true},
		{"file:test?mode=memory&cache=shared", true},
		{"/tmp/comments.db", false},
	}
	for _, tt := range tests {
		if got := isMemory(tt.dsn); got != tt.expected {
			t.Errorf("isMemory(%q) = %v, want %v", tt.dsn, got, tt.expected)
		}
	}
}

// ============================================================================
// CRUD Tests
// ============================================================================

func TestCreateComment(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(setupTestDB(t))
	ctx := context.Background()

	c, err := repo.CreateComment(ctx, "Apollo-Write docs", "pinged Alice again", "sam")
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	if c.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if c.TaskKey != "Apollo-Write docs" {
		t.Errorf("TaskKey = %q", c.TaskKey)
	}
	if c.Author != "sam" {
		t.Errorf("Author = %q", c.Author)
	}
	want := time.Date(2024, 3, 1, 9, 1, 0, 0, time.UTC)
	if !c.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, want)
	}
}

func TestGetCommentsByTask_OrderAndIsolation(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(setupTestDB(t))
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := repo.CreateComment(ctx, "Apollo-Write docs", msg, "sam"); err != nil {
			t.Fatalf("CreateComment failed: %v", err)
		}
	}
	if _, err := repo.CreateComment(ctx, "Borealis-Fix login", "other task", "sam"); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	comments, err := repo.GetCommentsByTask(ctx, "Apollo-Write docs")
	if err != nil {
		t.Fatalf("GetCommentsByTask failed: %v", err)
	}

	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if comments[i].Message != want {
			t.Errorf("comments[%d].Message = %q, want %q", i, comments[i].Message, want)
		}
	}
	if !comments[0].CreatedAt.Before(comments[2].CreatedAt) {
		t.Error("comments should be oldest first")
	}
}

func TestGetCommentsByTask_Empty(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(setupTestDB(t))

	comments, err := repo.GetCommentsByTask(context.Background(), "Nope-Nothing")
	if err != nil {
		t.Fatalf("GetCommentsByTask failed: %v", err)
	}
	if comments == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(comments) != 0 {
		t.Errorf("expected 0 comments, got %d", len(comments))
	}
}

func TestGetCommentCounts(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(setupTestDB(t))
	ctx := context.Background()

	for _, key := range []string{"A-1", "A-1", "B-2"} {
		if _, err := repo.CreateComment(ctx, key, "note", "sam"); err != nil {
			t.Fatalf("CreateComment failed: %v", err)
		}
	}

	counts, err := repo.GetCommentCounts(ctx)
	if err != nil {
		t.Fatalf("GetCommentCounts failed: %v", err)
	}
	if counts["A-1"] != 2 || counts["B-2"] != 1 || len(counts) != 2 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestNewCommentRepository(t *testing.T) {
	t.Parallel()
	repo := NewCommentRepository(setupTestDB(t))

	c, err := repo.CreateComment(context.Background(), "A-1", "note", "sam")
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

// ============================================================================
// Persistence Tests
// ============================================================================

func TestCommentsPersistAcrossRestart(t *testing.T) {
	t.Parallel()
	db, path := setupTestDBFile(t)
	ctx := context.Background()

	if _, err := newTestRepo(db).CreateComment(ctx, "A-1", "survives restart", "sam"); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	db = closeAndReopenDB(t, db, path)

	comments, err := newTestRepo(db).GetCommentsByTask(ctx, "A-1")
	if err != nil {
		t.Fatalf("GetCommentsByTask failed: %v", err)
	}
	if len(comments) != 1 || comments[0].Message != "survives restart" {
		t.Fatalf("comment not persisted: %+v", comments)
	}
	t.Logf("✓ comment persisted across restart")
}
