package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	// comments are keyed by the task key, not a foreign key: the tasks
	// themselves live in the ingested dataset, not in this database
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_key TEXT NOT NULL,
			message TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT 'unknown',
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_comments_task_key
		ON comments(task_key, id)
	`)
	return err
}
