package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS feedback_ideas (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  detail TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'idea',
  created_by TEXT NOT NULL,
  votes_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_ideas_created_at ON feedback_ideas(created_at);

CREATE TABLE IF NOT EXISTS feedback_votes (
  idea_id INTEGER NOT NULL,
  uid TEXT NOT NULL,
  created_at TEXT NOT NULL,
  PRIMARY KEY (idea_id, uid),
  FOREIGN KEY (idea_id) REFERENCES feedback_ideas(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS sync_toggles (
  uid TEXT PRIMARY KEY,
  favorites INTEGER NOT NULL DEFAULT 0,
  history INTEGER NOT NULL DEFAULT 0,
  quests INTEGER NOT NULL DEFAULT 0,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sync_documents (
  uid TEXT NOT NULL,
  dataset TEXT NOT NULL,
  data TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (uid, dataset)
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	// Run incremental migrations
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: content hash on sync documents, used as ETag
	exists, err := hasColumn(db, "sync_documents", "hash")
	if err != nil {
		return fmt.Errorf("check hash column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE sync_documents ADD COLUMN hash TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("add hash column: %w", err)
		}
	}

	// Migration 2: status filter for the admin feedback view
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_feedback_ideas_status ON feedback_ideas(status)`); err != nil {
		return fmt.Errorf("create idx_feedback_ideas_status: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
